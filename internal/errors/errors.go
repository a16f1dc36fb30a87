package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category classifies an error for display and handling.
type Category string

const (
	CatValidation Category = "validation"
	CatNotFound   Category = "notfound"
	CatIO         Category = "io"
	CatConfig     Category = "config"
	CatUsage      Category = "usage"
)

// Error is the standard error type for the tracker. It carries a category,
// a user-facing message, an actionable hint, and optionally the
// underlying cause.
type Error struct {
	Category Category
	Message  string
	Hint     string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given category and message.
func New(cat Category, msg string) *Error {
	return &Error{Category: cat, Message: msg}
}

// Wrap creates an Error wrapping an existing error.
func Wrap(cat Category, msg string, cause error) *Error {
	return &Error{Category: cat, Message: msg, Cause: cause}
}

// WithHint returns a copy of the error with the given hint.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// --- Convenience constructors ---

func Validation(msg string) *Error { return New(CatValidation, msg) }
func NotFound(msg string) *Error   { return New(CatNotFound, msg) }
func IO(msg string) *Error         { return New(CatIO, msg) }
func Config(msg string) *Error     { return New(CatConfig, msg) }
func Usage(msg string) *Error      { return New(CatUsage, msg) }

func WrapValidation(msg string, cause error) *Error { return Wrap(CatValidation, msg, cause) }
func WrapIO(msg string, cause error) *Error         { return Wrap(CatIO, msg, cause) }
func WrapConfig(msg string, cause error) *Error     { return Wrap(CatConfig, msg, cause) }

// --- Category predicates ---

// Is reports whether err carries the given category.
func Is(err error, cat Category) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == cat
}

func IsValidation(err error) bool { return Is(err, CatValidation) }
func IsNotFound(err error) bool   { return Is(err, CatNotFound) }
func IsIO(err error) bool         { return Is(err, CatIO) }

// --- Styled output ---

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // red bold
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))           // dim
	catStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))          // yellow
)

// Format renders an error for terminal display with colors.
// If verbose is true, the full causal chain is printed.
func Format(err error, verbose bool) string {
	var b strings.Builder

	var trkErr *Error
	if errors.As(err, &trkErr) {
		// Category label.
		b.WriteString(errorStyle.Render("error"))
		b.WriteString(catStyle.Render(fmt.Sprintf("[%s]", trkErr.Category)))
		b.WriteString(": ")
		b.WriteString(trkErr.Message)
		b.WriteString("\n")

		if trkErr.Hint != "" {
			b.WriteString(hintStyle.Render("  hint: "+trkErr.Hint) + "\n")
		}

		if verbose && trkErr.Cause != nil {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  cause: %v", trkErr.Cause)) + "\n")
		}
	} else {
		// Fallback for errors from outside the tracker.
		b.WriteString(errorStyle.Render("error") + ": " + err.Error() + "\n")
	}

	return b.String()
}

// Render writes a formatted error to stderr.
func Render(err error, verbose bool) {
	fmt.Fprint(os.Stderr, Format(err, verbose))
}
