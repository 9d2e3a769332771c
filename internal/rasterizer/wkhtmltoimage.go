// Package rasterizer turns composed documents into PNG files by driving an
// external wkhtmltoimage binary.
package rasterizer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/brandshot/internal/logger"
	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

// DefaultBinary is looked up on PATH when no explicit path is configured.
const DefaultBinary = "wkhtmltoimage"

const (
	DefaultTimeout    = 60 * time.Second
	DefaultRetryDelay = 500 * time.Millisecond

	// waitDelay bounds how long a killed process may hold its output pipes open.
	waitDelay = 2 * time.Second
)

// Rasterizer writes a document to outPath as an image.
type Rasterizer interface {
	Rasterize(ctx context.Context, document, outPath string, opts Options) error
}

// Config configures a Wkhtmltoimage rasterizer.
type Config struct {
	BinaryPath string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	Logger     *logger.Logger
}

// Wkhtmltoimage runs the wkhtmltoimage binary once per image.
type Wkhtmltoimage struct {
	binaryPath string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	log        *logger.Logger
}

var _ Rasterizer = (*Wkhtmltoimage)(nil)

// NewWkhtmltoimage applies defaults to cfg. A zero Timeout uses DefaultTimeout;
// a negative Timeout disables the deadline.
func NewWkhtmltoimage(cfg Config) *Wkhtmltoimage {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Wkhtmltoimage{
		binaryPath: strings.TrimSpace(cfg.BinaryPath),
		timeout:    timeout,
		retries:    retries,
		retryDelay: retryDelay,
		log:        log.WithFields(map[string]any{"component": "rasterizer"}),
	}
}

// Binary resolves the executable that will be invoked.
func (w *Wkhtmltoimage) Binary() (string, error) {
	name := w.binaryPath
	if name == "" {
		name = DefaultBinary
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("wkhtmltoimage binary not found: %w", err)
	}
	return path, nil
}

// Rasterize feeds document to wkhtmltoimage on stdin. Failed or timed-out runs
// are retried up to the configured count; a missing binary is not.
func (w *Wkhtmltoimage) Rasterize(ctx context.Context, document, outPath string, opts Options) error {
	bin, err := w.Binary()
	if err != nil {
		return apperrors.NewRasterizerError(opts.Platform, outPath, err)
	}

	attempts := w.retries + 1
	for attempt := 1; ; attempt++ {
		log := w.log.WithFields(map[string]any{"platform": opts.Platform, "attempt": attempt, "output": outPath})
		log.Debug("invoking wkhtmltoimage")

		err = w.runOnce(ctx, bin, document, outPath, opts)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || attempt >= attempts {
			return err
		}

		log.Error(err, "rasterizer attempt failed; retrying")
		select {
		case <-time.After(w.retryDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return err
		}
	}
}

func (w *Wkhtmltoimage) runOnce(ctx context.Context, bin, document, outPath string, opts Options) error {
	runCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	args := append(opts.Args(), "-", outPath)
	cmd := exec.CommandContext(runCtx, bin, args...)
	cmd.Stdin = strings.NewReader(document)
	cmd.WaitDelay = waitDelay

	res, err := Run(cmd)
	if err == nil {
		return nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return apperrors.NewRasterizerTimeoutError(opts.Platform, w.timeout)
	}
	if out := PrimaryOutput(res); out != "" {
		err = fmt.Errorf("%w: %s", err, out)
	}
	return apperrors.NewRasterizerError(opts.Platform, outPath, err)
}
