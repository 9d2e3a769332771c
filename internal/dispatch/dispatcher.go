// Package dispatch renders one content fragment onto every selected platform
// canvas.
package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/brandshot/internal/logger"
	"github.com/alexisbeaulieu97/brandshot/internal/model"
	"github.com/alexisbeaulieu97/brandshot/internal/platform"
	"github.com/alexisbeaulieu97/brandshot/internal/rasterizer"
	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

// Composer builds the document for one canvas.
type Composer interface {
	Compose(fragment, overrides string, width, height int) (string, error)
}

// Config controls where and how images are produced.
type Config struct {
	OutputDir string
	// Parallel bounds concurrent rasterizer runs. Values below 2 render sequentially.
	Parallel int
	// Verify checks every written file is a PNG of the exact canvas size.
	Verify bool
}

// Request is one batch: a fragment, optional overrides and a platform selection.
type Request struct {
	Content   string
	Styles    string
	Platforms []string
}

// Dispatcher renders requests. It is safe for concurrent use.
type Dispatcher struct {
	cfg        Config
	composer   Composer
	rasterizer rasterizer.Rasterizer
	log        *logger.Logger
	verify     func(platformName, path string, width, height int) error
}

// New wires a Dispatcher. A nil logger discards output.
func New(cfg Config, composer Composer, r rasterizer.Rasterizer, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		cfg:        cfg,
		composer:   composer,
		rasterizer: r,
		log:        log.WithFields(map[string]any{"component": "dispatcher"}),
		verify:     rasterizer.VerifyPNG,
	}
}

// OutputPath returns where the image for spec is written.
func (d *Dispatcher) OutputPath(spec platform.Spec) string {
	return filepath.Join(d.cfg.OutputDir, spec.Name+".png")
}

// Compose builds the document for a single platform without rasterizing it.
func (d *Dispatcher) Compose(spec platform.Spec, content, styles string) (string, error) {
	return d.composer.Compose(content, styles, spec.Width, spec.Height)
}

// RenderAll renders req on every selected platform in registry order.
//
// An unknown platform or an unusable output directory fails the whole request
// before anything is written. Otherwise every platform is attempted; the
// returned error is nil only when all of them succeeded, and results always
// hold one entry per selected platform.
func (d *Dispatcher) RenderAll(ctx context.Context, req Request) ([]model.RenderResult, error) {
	specs, err := platform.Resolve(req.Platforms)
	if err != nil {
		d.log.Error(err, "rejecting render request")
		return nil, err
	}
	if err := CheckOutputDir(d.cfg.OutputDir); err != nil {
		d.log.Error(err, "rejecting render request")
		return nil, err
	}

	d.log.WithFields(map[string]any{"platforms": len(specs), "output_dir": d.cfg.OutputDir}).Info("rendering batch")

	results := make([]model.RenderResult, len(specs))
	if d.cfg.Parallel < 2 {
		for i, spec := range specs {
			results[i] = d.renderOne(ctx, spec, req)
		}
	} else {
		pool := make(chan struct{}, d.cfg.Parallel)
		var wg sync.WaitGroup
		for i, spec := range specs {
			wg.Add(1)
			go func(i int, spec platform.Spec) {
				defer wg.Done()
				select {
				case pool <- struct{}{}:
					defer func() { <-pool }()
				case <-ctx.Done():
					results[i] = d.cancelled(spec, ctx.Err())
					return
				}
				results[i] = d.renderOne(ctx, spec, req)
			}(i, spec)
		}
		wg.Wait()
	}

	var failures []error
	for _, res := range results {
		if res.Error != nil {
			failures = append(failures, res.Error)
		}
	}
	return results, apperrors.NewBatchError(failures)
}

func (d *Dispatcher) renderOne(ctx context.Context, spec platform.Spec, req Request) model.RenderResult {
	if err := ctx.Err(); err != nil {
		return d.cancelled(spec, err)
	}

	outPath := d.OutputPath(spec)
	log := d.log.WithFields(map[string]any{
		"platform": spec.Name,
		"width":    spec.Width,
		"height":   spec.Height,
		"output":   outPath,
	})
	log.Info("generating image")

	start := time.Now()
	result := model.RenderResult{
		PlatformID: spec.ID,
		Platform:   spec.Name,
		OutputPath: outPath,
		Width:      spec.Width,
		Height:     spec.Height,
	}

	err := d.render(ctx, spec, req, outPath)
	result.Duration = time.Since(start)
	result.Timestamp = time.Now()

	if err != nil {
		result.Status = model.StatusFailed
		result.Error = apperrors.NewRenderError(spec.Name, err)
		result.Message = err.Error()
		log.WithFields(map[string]any{"duration_ms": result.Duration.Milliseconds()}).Error(err, "image failed")
		return result
	}

	result.Status = model.StatusSuccess
	result.Message = fmt.Sprintf("%s image (%dx%d) -> %s", spec.Name, spec.Width, spec.Height, outPath)
	log.WithFields(map[string]any{"duration_ms": result.Duration.Milliseconds()}).Info("image written")
	return result
}

func (d *Dispatcher) render(ctx context.Context, spec platform.Spec, req Request, outPath string) error {
	doc, err := d.Compose(spec, req.Content, req.Styles)
	if err != nil {
		return fmt.Errorf("compose document: %w", err)
	}
	if err := d.rasterizer.Rasterize(ctx, doc, outPath, rasterizer.For(spec)); err != nil {
		return err
	}
	if d.cfg.Verify {
		return d.verify(spec.Name, outPath, spec.Width, spec.Height)
	}
	return nil
}

func (d *Dispatcher) cancelled(spec platform.Spec, err error) model.RenderResult {
	return model.RenderResult{
		PlatformID: spec.ID,
		Platform:   spec.Name,
		OutputPath: d.OutputPath(spec),
		Width:      spec.Width,
		Height:     spec.Height,
		Status:     model.StatusCancelled,
		Message:    "request cancelled before rendering",
		Error:      apperrors.NewRenderError(spec.Name, err),
		Timestamp:  time.Now(),
	}
}

// CheckOutputDir ensures dir exists, is a directory and accepts new files.
func CheckOutputDir(dir string) error {
	if dir == "" {
		return apperrors.NewOutputDirectoryError(dir, fmt.Errorf("no output directory configured"))
	}
	info, err := os.Stat(dir)
	if err != nil {
		return apperrors.NewOutputDirectoryError(dir, err)
	}
	if !info.IsDir() {
		return apperrors.NewOutputDirectoryError(dir, fmt.Errorf("not a directory"))
	}

	probe, err := os.CreateTemp(dir, ".brandshot-probe-*")
	if err != nil {
		return apperrors.NewOutputDirectoryError(dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}
