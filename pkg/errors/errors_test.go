package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("brandshot.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "brandshot.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "brandshot.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("rasterizer.timeout", "must be positive", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "rasterizer.timeout", validationErr.Field)
	require.Contains(t, err.Error(), "must be positive")
}

func TestUnknownPlatformErrorNamesIdentifier(t *testing.T) {
	t.Parallel()

	err := NewUnknownPlatformError("9")

	var unknown *UnknownPlatformError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "9", unknown.ID)
	require.Equal(t, `unknown platform "9"`, err.Error())
}

func TestRasterizerErrorIncludesPlatformAndOutput(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 1")
	err := NewRasterizerError("facebook", "out/facebook.png", underlying)

	var rasterErr *RasterizerError
	require.ErrorAs(t, err, &rasterErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "rasterizer error [facebook] -> out/facebook.png: exit status 1", err.Error())
}

func TestRasterizerTimeoutMatchesDeadlineExceeded(t *testing.T) {
	t.Parallel()

	err := NewRasterizerTimeoutError("linkedin", 2*time.Second)

	require.True(t, stdErrors.Is(err, context.DeadlineExceeded))
	require.Contains(t, err.Error(), "linkedin")
	require.Contains(t, err.Error(), "2s")
}

func TestOutputDirectoryErrorWrapsCause(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewOutputDirectoryError("/readonly", underlying)

	var dirErr *OutputDirectoryError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, "/readonly", dirErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestBatchErrorExposesEveryFailure(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewBatchError(nil))

	timeout := NewRenderError("facebook", NewRasterizerTimeoutError("facebook", time.Second))
	failed := NewRenderError("linkedin", NewRasterizerError("linkedin", "", stdErrors.New("boom")))
	err := NewBatchError([]error{timeout, failed})

	require.True(t, stdErrors.Is(err, context.DeadlineExceeded))

	var rasterErr *RasterizerError
	require.ErrorAs(t, err, &rasterErr)
	require.Equal(t, "linkedin", rasterErr.Platform)

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Failures, 2)
	require.Contains(t, err.Error(), "2 platforms failed")
}

func TestBatchErrorSingleFailureMessage(t *testing.T) {
	t.Parallel()

	failure := NewRenderError("threads", stdErrors.New("disk full"))
	err := NewBatchError([]error{failure})
	require.Equal(t, failure.Error(), err.Error())
}
