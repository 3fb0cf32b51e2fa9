package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid"

	"github.com/pinnacle/erp/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected write (validation or persistence)
	ExitCommandError = 2 // Command error (bad flags, unreadable config, store unavailable)
)

// Error codes reported in CLI responses.
const (
	ErrCodeValidation  = "E_VALIDATION"
	ErrCodeDuplicate   = "E_DUPLICATE"
	ErrCodePersistence = "E_PERSISTENCE"
	ErrCodeCommand     = "E_COMMAND"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitCommandError for errors that are not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for diagnostic output (defaults to Writer)
	Verbose   bool
	TraceID   string
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status  string      `json:"status"`             // "ok" or "error"
	Data    interface{} `json:"data,omitempty"`     // success payload
	Error   *CLIError   `json:"error,omitempty"`    // error details
	TraceID string      `json:"trace_id,omitempty"` // per-invocation correlation id
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
		TraceID:   uuid.Must(uuid.NewV4()).String(),
	}
}

// JSON reports whether output is machine-readable.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// Success writes a JSON success envelope. Text output is written by the
// individual commands.
func (f *OutputFormatter) Success(data interface{}) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status:  "ok",
		Data:    data,
		TraceID: f.TraceID,
	})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			TraceID: f.TraceID,
		})
	}

	fmt.Fprintf(f.GetErrWriter(), "Erro [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.GetErrWriter(), "Detalhes: %v\n", details)
	}
	return nil
}

// Info writes a status line in text mode. JSON output stays a single envelope.
func (f *OutputFormatter) Info(format string, args ...interface{}) {
	if f.JSON() {
		return
	}
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// fail reports err to the user and converts it into an ExitError.
func (f *OutputFormatter) fail(err error) error {
	code, exit := classify(err)
	var details interface{}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		details = map[string]string{"field": ve.Field}
	}
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(exit, code, err)
}

func classify(err error) (code string, exit int) {
	var perr *domain.PersistenceError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrCodeValidation, ExitFailure
	case errors.Is(err, domain.ErrDuplicate):
		return ErrCodeDuplicate, ExitFailure
	case errors.As(err, &perr):
		return ErrCodePersistence, ExitFailure
	default:
		return ErrCodeCommand, ExitCommandError
	}
}
