package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

var colorEnabled = true

// DisableColors turns off ANSI colors in Format.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI colors back on.
func EnableColors() { colorEnabled = true }

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format renders the error for a terminal.
func (e *MeltError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(color(colorRed+colorBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(color(colorBold, " "+e.Code))
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	if e.File != "" {
		b.WriteString("  ")
		b.WriteString(color(colorCyan, e.File))
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(color(colorGray, "Cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(color(colorCyan, "Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(color(colorGray, "Learn more: "))
		b.WriteString(color(colorBlue, e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact renders the error on one line.
func (e *MeltError) FormatCompact() string {
	if e.File != "" {
		return e.File + ": " + e.Error()
	}
	return e.Error()
}

type jsonError struct {
	Code       string   `json:"code,omitempty"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	File       string   `json:"file,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	DocURL     string   `json:"docUrl,omitempty"`
	Cause      string   `json:"cause,omitempty"`
}

// MarshalJSON encodes the error for the live channel and JSON logs.
func (e *MeltError) MarshalJSON() ([]byte, error) {
	je := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		File:       e.File,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Wrapped != nil {
		je.Cause = e.Wrapped.Error()
	}
	return json.Marshal(je)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Print writes err to w, formatted when it is a MeltError.
func Print(w io.Writer, err error) {
	me, ok := err.(*MeltError)
	if !ok {
		fmt.Fprintf(w, "\n%s %s\n\n", color(colorRed+colorBold, "ERROR:"), err.Error())
		return
	}
	fmt.Fprint(w, me.Format())
}
