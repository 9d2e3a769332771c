package compose

// Brand holds the fixed visual identity applied to every canvas.
type Brand struct {
	Background    string
	Heading       string
	Body          string
	Accent        string
	HeadingFont   string
	BodyFont      string
	AccentFont    string
	FontImportURL string
}

// DefaultFontImportURL loads the brand families from Google Fonts. The
// downstream renderer fetches it; brandshot only references it.
const DefaultFontImportURL = "https://fonts.googleapis.com/css2?family=Archivo:wght@500;600;700&family=Archivo+Narrow:wght@500;600;700&family=Barlow:wght@400;500;600;700&display=swap"

// DefaultBrand returns the house palette and fonts.
func DefaultBrand() Brand {
	return Brand{
		Background:    "#1C1C1C",
		Heading:       "#E7B95F",
		Body:          "#F5F5F5",
		Accent:        "#E7B95F",
		HeadingFont:   "Archivo Narrow",
		BodyFont:      "Barlow",
		AccentFont:    "Archivo",
		FontImportURL: DefaultFontImportURL,
	}
}

// merged fills empty fields of b from the default brand.
func (b Brand) merged() Brand {
	def := DefaultBrand()
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Brand{
		Background:    pick(b.Background, def.Background),
		Heading:       pick(b.Heading, def.Heading),
		Body:          pick(b.Body, def.Body),
		Accent:        pick(b.Accent, def.Accent),
		HeadingFont:   pick(b.HeadingFont, def.HeadingFont),
		BodyFont:      pick(b.BodyFont, def.BodyFont),
		AccentFont:    pick(b.AccentFont, def.AccentFont),
		FontImportURL: b.FontImportURL,
	}
}
