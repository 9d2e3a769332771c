package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brandshot/internal/compose"
	"github.com/alexisbeaulieu97/brandshot/internal/config"
	"github.com/alexisbeaulieu97/brandshot/internal/dispatch"
	"github.com/alexisbeaulieu97/brandshot/internal/input"
	"github.com/alexisbeaulieu97/brandshot/internal/logger"
	"github.com/alexisbeaulieu97/brandshot/internal/model"
	"github.com/alexisbeaulieu97/brandshot/internal/rasterizer"
	"github.com/alexisbeaulieu97/brandshot/internal/report"
	"github.com/alexisbeaulieu97/brandshot/internal/sanitize"
	"github.com/alexisbeaulieu97/brandshot/internal/watch"
	"github.com/alexisbeaulieu97/brandshot/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

type renderOptions struct {
	ContentPath string
	StylesPath  string
	Platforms   []string
	OutputDir   string
	ConfigPath  string
	Timeout     time.Duration
	Retries     int
	Binary      string
	Parallel    int
	Sanitize    bool
	Watch       bool
	JSON        bool
	NoVerify    bool
}

var (
	newRasterizer = func(cfg rasterizer.Config) rasterizer.Rasterizer {
		return rasterizer.NewWkhtmltoimage(cfg)
	}
	newPrompter = func() input.Prompter {
		return input.NewSurveyPrompter()
	}
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the content onto every selected platform canvas",
		Example: `  brandshot render --content post.html --platform instagram,facebook
  brandshot render --content post.html --styles extra.css --out images --watch
  echo '<h1>Launch day</h1>' | brandshot render --platform all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOptions(opts); err != nil {
				return err
			}
			return runRender(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ContentPath, "content", "c", "", "HTML fragment file, or - for stdin")
	f.StringVarP(&opts.StylesPath, "styles", "s", "", "CSS overrides file, or - for stdin")
	f.StringSliceVarP(&opts.Platforms, "platform", "p", nil, "Platform ids or names, comma separated, or all")
	f.StringVarP(&opts.OutputDir, "out", "o", "", "Output directory (default from config, output_images)")
	f.StringVar(&opts.ConfigPath, "config", "", "Path to a brandshot YAML config")
	f.DurationVar(&opts.Timeout, "timeout", rasterizer.DefaultTimeout, "Per-platform rasterizer timeout")
	f.IntVar(&opts.Retries, "retries", 1, "Extra rasterizer attempts after a failure")
	f.StringVar(&opts.Binary, "wkhtmltoimage", "", "Path to the wkhtmltoimage binary")
	f.IntVar(&opts.Parallel, "parallel", 1, "Platforms rendered concurrently")
	f.BoolVar(&opts.Sanitize, "sanitize", false, "Strip scripts and unsafe markup from the content")
	f.BoolVar(&opts.Watch, "watch", false, "Re-render whenever the content or styles file changes")
	f.BoolVar(&opts.JSON, "json", false, "Print results as JSON")
	f.BoolVar(&opts.NoVerify, "no-verify", false, "Skip checking the written PNG dimensions")

	return cmd
}

// applyRenderOverrides lets explicitly set flags win over the config file.
func applyRenderOverrides(cmd *cobra.Command, cfg *config.Config, opts renderOptions) error {
	f := cmd.Flags()
	if f.Changed("out") {
		cfg.OutputDir = opts.OutputDir
	}
	if f.Changed("timeout") {
		cfg.Rasterizer.Timeout = opts.Timeout
	}
	if f.Changed("retries") {
		cfg.Rasterizer.Retries = opts.Retries
	}
	if f.Changed("wkhtmltoimage") {
		cfg.Rasterizer.Path = opts.Binary
	}
	if f.Changed("parallel") {
		cfg.Parallel = opts.Parallel
	}
	if opts.NoVerify {
		cfg.Verify = false
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return newCommandError("apply flags", "render", err, "Check the flag values against 'brandshot render --help'.")
	}
	return nil
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	ctx := cmd.Context()

	cfg, log, err := loadSettings(cmd, root, opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyRenderOverrides(cmd, cfg, opts); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		dirErr := apperrors.NewOutputDirectoryError(cfg.OutputDir, err)
		return newCommandError("prepare output directory", cfg.OutputDir, dirErr, suggestionFor(dirErr))
	}

	dispatcher := dispatch.New(
		dispatch.Config{OutputDir: cfg.OutputDir, Parallel: cfg.Parallel, Verify: cfg.Verify},
		compose.New(compose.WithBrand(cfg.ComposeBrand())),
		newRasterizer(cfg.RasterizerSettings(log)),
		log,
	)

	var prompter input.Prompter
	if stdinIsTerminal() {
		prompter = newPrompter()
	}

	req := dispatch.Request{Platforms: opts.Platforms}
	if len(req.Platforms) == 0 && prompter != nil {
		if req.Platforms, err = prompter.SelectPlatforms(ctx); err != nil {
			return err
		}
	}
	if req.Content, req.Styles, err = readInputs(ctx, cmd, opts, prompter, log); err != nil {
		return err
	}

	renderErr := renderAndReport(ctx, cmd, opts, dispatcher, req)
	if !opts.Watch {
		if renderErr != nil {
			return newCommandError("render images", cfg.OutputDir, renderErr, suggestionFor(renderErr))
		}
		return nil
	}
	if renderErr != nil {
		log.Error(renderErr, "initial render failed")
	}

	files := []string{opts.ContentPath}
	if opts.StylesPath != "" {
		files = append(files, opts.StylesPath)
	}
	watcher, err := watch.New(files, watch.DefaultDebounce, log)
	if err != nil {
		return newCommandError("watch inputs", opts.ContentPath, err, "Make sure the content and styles files exist.")
	}
	log.Info("watching for changes, press Ctrl+C to stop")

	return watcher.Run(ctx, func(ctx context.Context) error {
		next := req
		var err error
		if next.Content, next.Styles, err = readInputs(ctx, cmd, opts, nil, log); err != nil {
			return err
		}
		if next.Content == req.Content && next.Styles == req.Styles {
			log.Debug("inputs unchanged, skipping render")
			return nil
		}
		log.WithFields(map[string]any{
			"content": diff.Summary(req.Content, next.Content),
			"styles":  diff.Summary(req.Styles, next.Styles),
		}).Info("inputs changed, re-rendering")
		req = next
		return renderAndReport(ctx, cmd, opts, dispatcher, next)
	})
}

// readInputs gathers the fragment and overrides. The prompter is nil when
// stdin is not a terminal.
func readInputs(ctx context.Context, cmd *cobra.Command, opts renderOptions, prompter input.Prompter, log *logger.Logger) (string, string, error) {
	var (
		content string
		styles  string
		err     error
	)

	switch {
	case opts.ContentPath != "":
		content, err = input.Load(opts.ContentPath, cmd.InOrStdin())
	case prompter != nil:
		content, err = prompter.Content(ctx)
	default:
		content, err = input.ReadUntilEnd(cmd.InOrStdin())
	}
	if err != nil {
		return "", "", newCommandError("read content", displayPath(opts.ContentPath), err, "Pass --content FILE or pipe HTML on stdin ending with END.")
	}

	switch {
	case opts.StylesPath != "":
		styles, err = input.Load(opts.StylesPath, cmd.InOrStdin())
	case prompter != nil && opts.ContentPath == "":
		styles, err = prompter.Overrides(ctx)
	}
	if err != nil {
		return "", "", newCommandError("read styles", displayPath(opts.StylesPath), err, "Pass --styles FILE with plain CSS rules.")
	}

	content, usedSample := input.ContentOrSample(content)
	if usedSample {
		log.Warn("no content supplied, rendering the sample fragment")
	}
	if opts.Sanitize {
		content = sanitize.Fragment(content)
	}
	return content, styles, nil
}

func renderAndReport(ctx context.Context, cmd *cobra.Command, opts renderOptions, d *dispatch.Dispatcher, req dispatch.Request) error {
	results, err := d.RenderAll(ctx, req)
	if results == nil {
		return err
	}
	if printErr := printResults(cmd, opts, results); printErr != nil {
		return printErr
	}
	return err
}

func printResults(cmd *cobra.Command, opts renderOptions, results []model.RenderResult) error {
	out := cmd.OutOrStdout()
	if opts.JSON {
		return report.JSON(out, results)
	}
	styled := out == os.Stdout && stdoutIsTerminal()
	_, err := fmt.Fprintln(out, report.Table(results, styled))
	return err
}

func displayPath(path string) string {
	switch path {
	case "":
		return "interactive input"
	case "-":
		return "stdin"
	default:
		return path
	}
}
