package rasterizer

import (
	"fmt"
	"image/png"
	"os"

	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

// VerifyPNG checks that path holds a PNG of exactly width x height pixels.
func VerifyPNG(platformName, path string, width, height int) error {
	f, err := os.Open(path)
	if err != nil {
		return apperrors.NewRasterizerError(platformName, path, fmt.Errorf("output missing: %w", err))
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return apperrors.NewRasterizerError(platformName, path, fmt.Errorf("output is not a PNG: %w", err))
	}
	if cfg.Width != width || cfg.Height != height {
		return apperrors.NewRasterizerError(platformName, path,
			fmt.Errorf("canvas is %dx%d, want %dx%d", cfg.Width, cfg.Height, width, height))
	}
	return nil
}
