package errors

import (
	stderrors "errors"
	"fmt"
)

// Category groups error codes.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryTheme    Category = "theme"
	CategoryServer   Category = "server"
	CategoryProtocol Category = "protocol"
	CategoryRuntime  Category = "runtime"
	CategoryCLI      Category = "cli"
)

// MeltError is a structured error with a stable code.
type MeltError struct {
	// Code is the registry key, e.g. "M001".
	Code     string
	Category Category
	Message  string
	Detail   string
	// File is the file the error is about, if any.
	File       string
	Suggestion string
	DocURL     string
	Wrapped    error
}

func (e *MeltError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *MeltError) Unwrap() error {
	return e.Wrapped
}

func (e *MeltError) WithDetail(d string) *MeltError {
	e.Detail = d
	return e
}

func (e *MeltError) WithFile(path string) *MeltError {
	e.File = path
	return e
}

func (e *MeltError) WithSuggestion(s string) *MeltError {
	e.Suggestion = s
	return e
}

func (e *MeltError) Wrap(err error) *MeltError {
	e.Wrapped = err
	return e
}

// New creates an error from a registered code.
func New(code string) *MeltError {
	tmpl, ok := registry[code]
	if !ok {
		return &MeltError{Code: code, Message: "Unknown error"}
	}
	return &MeltError{
		Code:     code,
		Category: tmpl.Category,
		Message:  tmpl.Message,
		Detail:   tmpl.Detail,
		DocURL:   tmpl.DocURL,
	}
}

// Newf creates an uncoded error.
func Newf(category Category, format string, args ...any) *MeltError {
	return &MeltError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err under code. An err that already carries a MeltError
// is returned as that error.
func FromError(err error, code string) *MeltError {
	if err == nil {
		return nil
	}
	var me *MeltError
	if stderrors.As(err, &me) {
		return me
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first MeltError in err's chain.
func Code(err error) string {
	var me *MeltError
	if stderrors.As(err, &me) {
		return me.Code
	}
	return ""
}
