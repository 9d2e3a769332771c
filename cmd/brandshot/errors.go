package main

import (
	"errors"
	"fmt"
	"os/exec"

	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor picks advice matching the most actionable failure in err.
func suggestionFor(err error) string {
	var (
		unknown *apperrors.UnknownPlatformError
		dirErr  *apperrors.OutputDirectoryError
		timeout *apperrors.RasterizerTimeoutError
	)
	switch {
	case errors.As(err, &unknown):
		return "Run 'brandshot platforms' to list valid identifiers."
	case errors.Is(err, exec.ErrNotFound):
		return "Install wkhtmltoimage or point --wkhtmltoimage at the binary."
	case errors.As(err, &dirErr):
		return "Choose a writable directory with --out."
	case errors.As(err, &timeout):
		return "Increase --timeout or simplify the content."
	default:
		return "Re-run with --verbose to see the rasterizer output."
	}
}
