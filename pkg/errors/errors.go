package errors

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownPlatformError rejects a request naming a platform outside the registry.
type UnknownPlatformError struct {
	ID string
}

// NewUnknownPlatformError constructs an UnknownPlatformError.
func NewUnknownPlatformError(id string) error {
	return &UnknownPlatformError{ID: id}
}

func (e *UnknownPlatformError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown platform %q", e.ID)
}

// RasterizerError reports a failed rasterizer invocation for one platform.
type RasterizerError struct {
	Platform string
	Output   string
	Err      error
}

// NewRasterizerError constructs a RasterizerError.
func NewRasterizerError(platform, output string, err error) error {
	return &RasterizerError{Platform: platform, Output: output, Err: err}
}

func (e *RasterizerError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("rasterizer error")
	if e.Platform != "" {
		fmt.Fprintf(&b, " [%s]", e.Platform)
	}
	if e.Output != "" {
		fmt.Fprintf(&b, " -> %s", e.Output)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying error.
func (e *RasterizerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RasterizerTimeoutError reports a rasterizer run that exceeded its deadline.
type RasterizerTimeoutError struct {
	Platform string
	Timeout  time.Duration
}

// NewRasterizerTimeoutError constructs a RasterizerTimeoutError.
func NewRasterizerTimeoutError(platform string, timeout time.Duration) error {
	return &RasterizerTimeoutError{Platform: platform, Timeout: timeout}
}

func (e *RasterizerTimeoutError) Error() string {
	if e == nil {
		return ""
	}
	if e.Platform != "" {
		return fmt.Sprintf("rasterizer timeout [%s]: no result after %s", e.Platform, e.Timeout)
	}
	return fmt.Sprintf("rasterizer timeout: no result after %s", e.Timeout)
}

// Unwrap lets callers match the timeout with errors.Is(err, context.DeadlineExceeded).
func (e *RasterizerTimeoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return context.DeadlineExceeded
}

// OutputDirectoryError indicates the output directory cannot receive images.
type OutputDirectoryError struct {
	Path string
	Err  error
}

// NewOutputDirectoryError constructs an OutputDirectoryError.
func NewOutputDirectoryError(path string, err error) error {
	return &OutputDirectoryError{Path: path, Err: err}
}

func (e *OutputDirectoryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("output directory %s is not writable: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *OutputDirectoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError attributes a failure to exactly one platform.
type RenderError struct {
	Platform string
	Err      error
}

// NewRenderError constructs a RenderError.
func NewRenderError(platform string, err error) error {
	return &RenderError{Platform: platform, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Platform != "" {
		return fmt.Sprintf("render error on platform %s: %v", e.Platform, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BatchError aggregates the per-platform failures of one render request.
type BatchError struct {
	Failures []error
}

// NewBatchError returns nil when failures is empty.
func NewBatchError(failures []error) error {
	if len(failures) == 0 {
		return nil
	}
	return &BatchError{Failures: append([]error(nil), failures...)}
}

func (e *BatchError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Failures) == 1 {
		return e.Failures[0].Error()
	}
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.Error())
	}
	return fmt.Sprintf("%d platforms failed: %s", len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes every failure so errors.Is and errors.As search all of them.
func (e *BatchError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Failures
}
