package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandshot/internal/compose"
	"github.com/alexisbeaulieu97/brandshot/internal/dispatch"
	"github.com/alexisbeaulieu97/brandshot/internal/input"
	"github.com/alexisbeaulieu97/brandshot/internal/platform"
	"github.com/alexisbeaulieu97/brandshot/internal/sanitize"
	"github.com/alexisbeaulieu97/brandshot/pkg/diff"
)

type previewOptions struct {
	Platform    string
	ContentPath string
	StylesPath  string
	ConfigPath  string
	Compare     string
	Sanitize    bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the composed HTML document for one platform without rasterizing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(opts.ContentPath, "content"); err != nil {
				return err
			}
			if err := requireFile(opts.StylesPath, "styles"); err != nil {
				return err
			}
			return runPreview(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Platform, "platform", "p", "", "Platform id or name")
	f.StringVarP(&opts.ContentPath, "content", "c", "", "HTML fragment file (default: stdin until END)")
	f.StringVarP(&opts.StylesPath, "styles", "s", "", "CSS overrides file")
	f.StringVar(&opts.ConfigPath, "config", "", "Path to a brandshot YAML config")
	f.StringVar(&opts.Compare, "compare", "", "Print a diff against the document for this platform instead")
	f.BoolVar(&opts.Sanitize, "sanitize", false, "Strip scripts and unsafe markup from the content")
	cmd.MarkFlagRequired("platform") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	cfg, log, err := loadSettings(cmd, root, opts.ConfigPath)
	if err != nil {
		return err
	}

	spec, err := platform.Lookup(opts.Platform)
	if err != nil {
		return newCommandError("select platform", opts.Platform, err, suggestionFor(err))
	}

	content, err := loadOrStdin(cmd, opts.ContentPath)
	if err != nil {
		return newCommandError("read content", displayPath(opts.ContentPath), err, "Pass --content FILE or pipe HTML on stdin ending with END.")
	}
	content, usedSample := input.ContentOrSample(content)
	if usedSample {
		log.Warn("no content supplied, previewing the sample fragment")
	}
	if opts.Sanitize {
		content = sanitize.Fragment(content)
	}

	var styles string
	if opts.StylesPath != "" {
		if styles, err = input.Load(opts.StylesPath, cmd.InOrStdin()); err != nil {
			return newCommandError("read styles", opts.StylesPath, err, "Pass --styles FILE with plain CSS rules.")
		}
	}

	d := dispatch.New(dispatch.Config{OutputDir: cfg.OutputDir}, compose.New(compose.WithBrand(cfg.ComposeBrand())), nil, log)
	doc, err := d.Compose(spec, content, styles)
	if err != nil {
		return err
	}
	if opts.Compare == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	other, err := platform.Lookup(opts.Compare)
	if err != nil {
		return newCommandError("select platform", opts.Compare, err, suggestionFor(err))
	}
	otherDoc, err := d.Compose(other, content, styles)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), diff.Unified(doc, otherDoc, spec.Name+".html", other.Name+".html", 2))
	return err
}

func loadOrStdin(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		return input.ReadUntilEnd(cmd.InOrStdin())
	}
	return input.Load(path, cmd.InOrStdin())
}
