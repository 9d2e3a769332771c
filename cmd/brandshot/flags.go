package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

func validateRenderOptions(opts renderOptions) error {
	if err := requireFile(opts.ContentPath, "content"); err != nil {
		return err
	}
	if err := requireFile(opts.StylesPath, "styles"); err != nil {
		return err
	}
	if opts.ContentPath == "-" && opts.StylesPath == "-" {
		return fmt.Errorf("content and styles cannot both be read from stdin")
	}
	if opts.Watch && (opts.ContentPath == "" || opts.ContentPath == "-") {
		return fmt.Errorf("--watch needs --content pointing at a file")
	}
	if opts.Watch && opts.StylesPath == "-" {
		return fmt.Errorf("--watch cannot read styles from stdin")
	}
	if _, err := platform.Resolve(opts.Platforms); err != nil {
		return newCommandError("select platforms", strings.Join(opts.Platforms, ","), err, suggestionFor(err))
	}
	return nil
}

// requireFile accepts an empty path (flag not set) or "-" (stdin).
func requireFile(path, label string) error {
	if path == "" || path == "-" {
		return nil
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file path is blank", label)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", label, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", label, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", label, abs)
	}
	return nil
}
