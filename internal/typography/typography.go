// Package typography derives canvas-relative font sizes.
//
// The thresholds below are empirical brand choices. They are part of the
// observable output and must stay literal.
package typography

import "math"

const (
	// PortraitRatio is the height/width ratio at which a canvas counts as portrait.
	PortraitRatio = 1.2

	PortraitFactor = 0.028
	PortraitMin    = 24
	PortraitMax    = 36

	LandscapeFactor = 0.024
	LandscapeMin    = 16
	LandscapeMax    = 24

	Heading1Scale   = 2.0
	Heading3Scale   = 1.4
	LineHeightScale = 1.6
)

// Profile is the set of sizes derived from a single canvas. All values are px.
type Profile struct {
	Base       int
	Heading1   int
	Heading3   int
	LineHeight int
}

// Compute derives a Profile for a width x height canvas. Non-positive input
// is treated as landscape and lands on the landscape floor.
func Compute(width, height int) Profile {
	var base int
	if IsPortrait(width, height) {
		base = clamp(round(float64(height)*PortraitFactor), PortraitMin, PortraitMax)
	} else {
		base = clamp(round(float64(height)*LandscapeFactor), LandscapeMin, LandscapeMax)
	}

	return Profile{
		Base:       base,
		Heading1:   round(float64(base) * Heading1Scale),
		Heading3:   round(float64(base) * Heading3Scale),
		LineHeight: round(float64(base) * LineHeightScale),
	}
}

// IsPortrait reports whether height/width reaches PortraitRatio.
func IsPortrait(width, height int) bool {
	if width <= 0 {
		return false
	}
	return float64(height)/float64(width) >= PortraitRatio
}

// Scale fills in the heading levels a Profile does not carry.
type Scale struct {
	H1, H2, H3, H4, H5, H6 int
	Body                   int
	Caption                int
}

// Scale derives the full heading ladder from the profile's base size.
func (p Profile) Scale() Scale {
	base := float64(p.Base)
	return Scale{
		H1:      p.Heading1,
		H2:      round(base * 1.7),
		H3:      p.Heading3,
		H4:      round(base * 1.2),
		H5:      round(base * 1.1),
		H6:      p.Base,
		Body:    p.Base,
		Caption: round(base * 0.85),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
