// Package compose wraps an HTML fragment in a complete branded document sized
// for one canvas.
//
// The fragment and the style overrides are embedded verbatim. Nothing here
// escapes or sanitizes them; callers handling untrusted input must clean it
// before it reaches the composer.
package compose

import (
	"embed"
	"math"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/brandshot/internal/typography"
	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

const (
	// ContainerRatio is the share of the canvas width given to the content column.
	ContainerRatio = 0.8
	// DefaultMaxContainerWidth caps line length on wide canvases.
	DefaultMaxContainerWidth = 960
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(template.New("document.html.tmpl").ParseFS(templateFS, "templates/document.html.tmpl"))

// Option configures a Composer.
type Option func(*Composer)

// WithBrand replaces the default palette and fonts. Empty fields keep their
// defaults, except FontImportURL where empty disables the import.
func WithBrand(brand Brand) Option {
	return func(c *Composer) {
		c.brand = brand.merged()
	}
}

// WithMaxContainerWidth overrides the content column cap. Non-positive values are ignored.
func WithMaxContainerWidth(px int) Option {
	return func(c *Composer) {
		if px > 0 {
			c.maxContainer = px
		}
	}
}

// Composer builds documents. It holds no per-render state and is safe for
// concurrent use.
type Composer struct {
	brand        Brand
	maxContainer int
	tmpl         *template.Template
}

// New constructs a Composer with the default brand.
func New(opts ...Option) *Composer {
	c := &Composer{
		brand:        DefaultBrand(),
		maxContainer: DefaultMaxContainerWidth,
		tmpl:         documentTemplate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Brand returns the palette this composer applies.
func (c *Composer) Brand() Brand {
	return c.brand
}

// Spacing carries box-model values derived from the base font size.
type Spacing struct {
	Wrapper int
	Card    int
	Radius  int
}

// View is the typed data handed to the document template.
type View struct {
	Brand          Brand
	Type           typography.Profile
	Scale          typography.Scale
	Spacing        Spacing
	Width          int
	Height         int
	ContainerWidth int
	HasOverrides   bool
	Overrides      string
	Content        string
}

// ContainerWidth returns min(round(width*0.8), maxWidth).
func ContainerWidth(width, maxWidth int) int {
	w := int(math.Round(float64(width) * ContainerRatio))
	if w > maxWidth {
		return maxWidth
	}
	return w
}

// View assembles the template data for a canvas without rendering it.
func (c *Composer) View(fragment, overrides string, width, height int) View {
	profile := typography.Compute(width, height)
	return View{
		Brand:   c.brand,
		Type:    profile,
		Scale:   profile.Scale(),
		Spacing: spacingFor(profile),
		Width:   width,
		Height:  height,

		ContainerWidth: ContainerWidth(width, c.maxContainer),
		HasOverrides:   strings.TrimSpace(overrides) != "",
		Overrides:      overrides,
		Content:        fragment,
	}
}

// Compose renders the full document for a width x height canvas.
func (c *Composer) Compose(fragment, overrides string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", apperrors.NewValidationError("canvas", "width and height must be positive", nil)
	}

	var b strings.Builder
	if err := c.tmpl.Execute(&b, c.View(fragment, overrides, width, height)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func spacingFor(p typography.Profile) Spacing {
	return Spacing{
		Wrapper: p.Base,
		Card:    int(math.Round(float64(p.Base) * 1.25)),
		Radius:  int(math.Round(float64(p.Base) * 0.66)),
	}
}
