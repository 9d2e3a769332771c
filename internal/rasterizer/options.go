package rasterizer

import (
	"strconv"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

const (
	// FormatPNG is the only output format brandshot requests.
	FormatPNG = "png"
	// EncodingUTF8 is the document encoding passed to the rasterizer.
	EncodingUTF8 = "UTF-8"
)

// Options is the configuration bag handed to the rasterizer for one image.
type Options struct {
	// Platform names the canvas for error attribution; it is not passed to the binary.
	Platform string

	Format            string
	Width             int
	Height            int
	Encoding          string
	DisableSmartWidth bool
}

// For builds the exact-canvas options for a platform.
func For(spec platform.Spec) Options {
	return Options{
		Platform:          spec.Name,
		Format:            FormatPNG,
		Width:             spec.Width,
		Height:            spec.Height,
		Encoding:          EncodingUTF8,
		DisableSmartWidth: true,
	}
}

// Args renders the options as wkhtmltoimage flags.
func (o Options) Args() []string {
	args := make([]string, 0, 9)
	if o.Format != "" {
		args = append(args, "--format", o.Format)
	}
	if o.Width > 0 {
		args = append(args, "--width", strconv.Itoa(o.Width))
	}
	if o.Height > 0 {
		args = append(args, "--height", strconv.Itoa(o.Height))
	}
	if o.Encoding != "" {
		args = append(args, "--encoding", o.Encoding)
	}
	if o.DisableSmartWidth {
		args = append(args, "--disable-smart-width")
	}
	return args
}
