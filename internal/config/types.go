package config

import (
	"time"

	"github.com/alexisbeaulieu97/brandshot/internal/compose"
	"github.com/alexisbeaulieu97/brandshot/internal/logger"
	"github.com/alexisbeaulieu97/brandshot/internal/rasterizer"
)

// Config represents the optional brandshot configuration document.
type Config struct {
	OutputDir  string           `yaml:"output_dir" validate:"required"`
	Parallel   int              `yaml:"parallel" validate:"min=1,max=8"`
	Verify     bool             `yaml:"verify"`
	Rasterizer RasterizerConfig `yaml:"rasterizer"`
	Brand      BrandConfig      `yaml:"brand"`
	Log        LogConfig        `yaml:"log"`
}

// RasterizerConfig locates and bounds the external wkhtmltoimage binary.
type RasterizerConfig struct {
	Path       string        `yaml:"path"`
	Timeout    time.Duration `yaml:"timeout" validate:"min=0"`
	Retries    int           `yaml:"retries" validate:"min=0,max=5"`
	RetryDelay time.Duration `yaml:"retry_delay" validate:"min=0"`
}

// BrandConfig overrides the house palette and fonts.
type BrandConfig struct {
	Background    string `yaml:"background" validate:"omitempty,hexcolor"`
	Heading       string `yaml:"heading" validate:"omitempty,hexcolor"`
	Body          string `yaml:"body" validate:"omitempty,hexcolor"`
	Accent        string `yaml:"accent" validate:"omitempty,hexcolor"`
	HeadingFont   string `yaml:"heading_font" validate:"omitempty,font_family"`
	BodyFont      string `yaml:"body_font" validate:"omitempty,font_family"`
	AccentFont    string `yaml:"accent_font" validate:"omitempty,font_family"`
	FontImportURL string `yaml:"font_import_url" validate:"omitempty,url"`
}

// LogConfig selects verbosity and output encoding.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	brand := compose.DefaultBrand()
	return Config{
		OutputDir: "output_images",
		Parallel:  1,
		Verify:    true,
		Rasterizer: RasterizerConfig{
			Timeout:    rasterizer.DefaultTimeout,
			Retries:    1,
			RetryDelay: rasterizer.DefaultRetryDelay,
		},
		Brand: BrandConfig{
			Background:    brand.Background,
			Heading:       brand.Heading,
			Body:          brand.Body,
			Accent:        brand.Accent,
			HeadingFont:   brand.HeadingFont,
			BodyFont:      brand.BodyFont,
			AccentFont:    brand.AccentFont,
			FontImportURL: brand.FontImportURL,
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// ComposeBrand converts the brand section for the composer.
func (c Config) ComposeBrand() compose.Brand {
	return compose.Brand{
		Background:    c.Brand.Background,
		Heading:       c.Brand.Heading,
		Body:          c.Brand.Body,
		Accent:        c.Brand.Accent,
		HeadingFont:   c.Brand.HeadingFont,
		BodyFont:      c.Brand.BodyFont,
		AccentFont:    c.Brand.AccentFont,
		FontImportURL: c.Brand.FontImportURL,
	}
}

// RasterizerSettings converts the rasterizer section, attaching log.
func (c Config) RasterizerSettings(log *logger.Logger) rasterizer.Config {
	return rasterizer.Config{
		BinaryPath: c.Rasterizer.Path,
		Timeout:    c.Rasterizer.Timeout,
		Retries:    c.Rasterizer.Retries,
		RetryDelay: c.Rasterizer.RetryDelay,
		Logger:     log,
	}
}

// LoggerOptions converts the log section.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:         c.Log.Level,
		HumanReadable: c.Log.Format != "json",
	}
}
