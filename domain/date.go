package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// InputDateLayout is the day/month/year layout accepted from users.
	InputDateLayout = "02/01/2006"
	// StoredDateLayout is the ISO 8601 calendar layout kept in the store.
	StoredDateLayout = "2006-01-02"
)

// BirthDate is an optional calendar date held as an ISO 8601 string.
// The empty value is stored as NULL.
type BirthDate string

// ParseBirthDate parses a DD/MM/YYYY string. Empty input gives the empty date.
func ParseBirthDate(s string) (BirthDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		return "", &DateFormatError{Input: s, Err: err}
	}
	return BirthDate(t.Format(StoredDateLayout)), nil
}

// Display renders the date as DD/MM/YYYY. Values that are not valid ISO dates
// are returned as stored.
func (d BirthDate) Display() string {
	t, err := time.Parse(StoredDateLayout, string(d))
	if err != nil {
		return string(d)
	}
	return t.Format(InputDateLayout)
}

func (d BirthDate) IsZero() bool { return d == "" }

// Validate reports a non-empty date that is not a real ISO 8601 calendar date.
func (d BirthDate) Validate() error {
	if d.IsZero() {
		return nil
	}
	if _, err := time.Parse(StoredDateLayout, string(d)); err != nil {
		return &DateFormatError{Input: string(d), Err: err}
	}
	return nil
}

// Value implements driver.Valuer.
func (d BirthDate) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// Scan implements sql.Scanner.
func (d *BirthDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case string:
		*d = BirthDate(v)
	case []byte:
		*d = BirthDate(v)
	case time.Time:
		*d = BirthDate(v.Format(StoredDateLayout))
	default:
		return fmt.Errorf("cannot scan %T into BirthDate", src)
	}
	return nil
}
