package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PriceScale is the number of decimal places kept for prices.
const PriceScale = 2

// Validator checks records before they are written. The zero value checks
// required fields and numeric bounds only; StrictEnums also rejects values
// outside the option sets.
type Validator struct {
	StrictEnums bool
}

// ValidateProduct checks p with the default Validator.
func ValidateProduct(p Product) error { return Validator{}.Product(p) }

// ValidateClient checks c with the default Validator.
func ValidateClient(c Client) error { return Validator{}.Client(c) }

func (v Validator) Product(p Product) error {
	if err := RequireText("codigo_produto", p.Code); err != nil {
		return err
	}
	if err := RequireText("descricao_produto", p.Description); err != nil {
		return err
	}
	if err := RequireNonNegative("preco_custo", p.CostPrice); err != nil {
		return err
	}
	if err := RequireNonNegative("preco_venda", p.SalePrice); err != nil {
		return err
	}
	if err := RequireStock(p.Stock); err != nil {
		return err
	}
	if !v.StrictEnums {
		return nil
	}
	return v.productOptions(p)
}

func (v Validator) productOptions(p Product) error {
	switch {
	case !p.Color.Valid():
		return invalidOption("cor", string(p.Color))
	case !p.Size.Valid():
		return invalidOption("tamanho", string(p.Size))
	case !p.Fit.Valid():
		return invalidOption("modelagem", string(p.Fit))
	case !p.Gender.Valid():
		return invalidOption("genero", string(p.Gender))
	case !p.Group.Valid():
		return invalidOption("grupo", string(p.Group))
	case !p.Subgroup.Valid():
		return invalidOption("subgrupo", string(p.Subgroup))
	}
	return nil
}

func (v Validator) Client(c Client) error {
	if err := RequireText("nome", c.Name); err != nil {
		return err
	}
	if err := RequireText("cpf", c.CPF); err != nil {
		return err
	}
	if err := c.BirthDate.Validate(); err != nil {
		return err
	}
	if v.StrictEnums && !c.Sex.Valid() {
		return invalidOption("sexo", string(c.Sex))
	}
	return nil
}

// RequireText rejects empty or blank values.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func RequireNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return &ValidationError{Field: field, Message: "must not be negative"}
	}
	return nil
}

func RequireStock(n int) error {
	if n < 0 {
		return &ValidationError{Field: "estoque", Message: "must not be negative"}
	}
	return nil
}

func invalidOption(field, value string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("unknown option %q", value)}
}

// NormalizeProduct trims and NFC-normalizes text, upper-cases enumerated
// fields and rounds prices to PriceScale places.
func NormalizeProduct(p Product) Product {
	p.Code = NormalizeText(p.Code)
	p.Description = NormalizeText(p.Description)
	p.Color = Color(NormalizeOption(string(p.Color)))
	p.Size = Size(NormalizeOption(string(p.Size)))
	p.Fit = Fit(NormalizeOption(string(p.Fit)))
	p.Gender = Gender(NormalizeOption(string(p.Gender)))
	p.Group = Group(NormalizeOption(string(p.Group)))
	p.Subgroup = Subgroup(NormalizeOption(string(p.Subgroup)))
	p.CostPrice = p.CostPrice.Round(PriceScale)
	p.SalePrice = p.SalePrice.Round(PriceScale)
	return p
}

// NormalizeClient trims and NFC-normalizes text fields and upper-cases Sex.
func NormalizeClient(c Client) Client {
	c.Name = NormalizeText(c.Name)
	c.CPF = NormalizeText(c.CPF)
	c.Sex = Sex(NormalizeOption(string(c.Sex)))
	c.Phone = NormalizeText(c.Phone)
	c.Email = NormalizeText(c.Email)
	return c
}

func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeOption strips accents from s and upper-cases it with Brazilian
// Portuguese casing rules, so "calça" becomes "CALCA".
func NormalizeOption(s string) string {
	stripped, _, err := transform.String(stripMarks(), NormalizeText(s))
	if err != nil {
		stripped = NormalizeText(s)
	}
	return cases.Upper(language.BrazilianPortuguese).String(stripped)
}

// stripMarks returns a fresh transformer; transform chains are not safe for
// concurrent use.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
