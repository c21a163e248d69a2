// Package rendering draws flowed CV pages as PDF documents.
package rendering

import "fmt"

// RenderError represents a general rendering failure
type RenderError struct {
	Page    int // 1-based page being drawn, 0 when not page specific
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Page > 0 {
		prefix = fmt.Sprintf("render error on page %d", e.Page)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
