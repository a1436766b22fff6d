// Package errors defines the stable error codes reported by maketree.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Printed on stderr; treat as a public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	EInvalidOptions Code = "E_INVALID_OPTIONS"
	ERenderFailed   Code = "E_RENDER_FAILED"
	EOutputInvalid  Code = "E_OUTPUT_INVALID"
	EWriteFailed    Code = "E_WRITE_FAILED"
)

// TreeError is the error type returned across maketree packages.
type TreeError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns "CODE: message".
func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *TreeError) Unwrap() error {
	return e.Cause
}

// New creates a TreeError with the given code and message.
func New(code Code, msg string) error {
	return &TreeError{Code: code, Msg: msg}
}

// NewWithDetails creates a TreeError carrying a copy of details (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &TreeError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a TreeError around an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &TreeError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails is Wrap plus a copy of details (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &TreeError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the code from err, or "" if err is not a TreeError.
func GetCode(err error) Code {
	if te, ok := AsTreeError(err); ok {
		return te.Code
	}
	return ""
}

// AsTreeError returns (*TreeError, true) if err is or wraps a TreeError.
func AsTreeError(err error) (*TreeError, bool) {
	var te *TreeError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode maps an error to a process exit status.
// 0 for nil, 2 for E_USAGE, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes err to w in the stderr format:
//
//	error_code: <CODE>
//	<message>
//
// Errors that are not TreeErrors are printed as-is on one line.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	te, ok := AsTreeError(err)
	if !ok {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintf(w, "error_code: %s\n", te.Code)
	if te.Cause != nil {
		fmt.Fprintf(w, "%s: %v\n", te.Msg, te.Cause)
		return
	}
	fmt.Fprintln(w, te.Msg)
}
