// Package platform holds the fixed set of social-media canvases brandshot renders.
package platform

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

// AllSelector selects every registered platform.
const AllSelector = "all"

// allMenuKey is the numeric menu choice that stands for "all of the above".
const allMenuKey = "5"

// Spec describes one output target.
type Spec struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AspectRatio returns height divided by width.
func (s Spec) AspectRatio() float64 {
	if s.Width <= 0 {
		return 0
	}
	return float64(s.Height) / float64(s.Width)
}

func (s Spec) String() string {
	return fmt.Sprintf("%s (%d x %d)", s.Name, s.Width, s.Height)
}

var registry = [...]Spec{
	{ID: "1", Name: "instagram", Width: 1080, Height: 1350},
	{ID: "2", Name: "facebook", Width: 1200, Height: 630},
	{ID: "3", Name: "linkedin", Width: 1200, Height: 627},
	{ID: "4", Name: "threads", Width: 1080, Height: 1350},
}

// All returns every platform ordered by identifier. The slice is a copy.
func All() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry[:])
	return out
}

// Lookup resolves an identifier or display name.
func Lookup(id string) (Spec, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, spec := range registry {
		if spec.ID == key || spec.Name == key {
			return spec, nil
		}
	}
	return Spec{}, apperrors.NewUnknownPlatformError(id)
}

// Resolve expands a user selection into registry-ordered specs. Entries may
// contain comma-separated tokens; "all" (or menu choice 5) selects everything.
// An empty selection also selects everything. Any unknown token rejects the
// whole selection.
func Resolve(selection []string) ([]Spec, error) {
	tokens := make([]string, 0, len(selection))
	for _, entry := range selection {
		for _, token := range strings.Split(entry, ",") {
			token = strings.TrimSpace(token)
			if token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) == 0 {
		return All(), nil
	}

	wanted := make(map[string]bool, len(registry))
	for _, token := range tokens {
		lowered := strings.ToLower(token)
		if lowered == AllSelector || lowered == allMenuKey {
			for _, spec := range registry {
				wanted[spec.ID] = true
			}
			continue
		}
		spec, err := Lookup(token)
		if err != nil {
			return nil, err
		}
		wanted[spec.ID] = true
	}

	out := make([]Spec, 0, len(wanted))
	for _, spec := range registry {
		if wanted[spec.ID] {
			out = append(out, spec)
		}
	}
	return out, nil
}
