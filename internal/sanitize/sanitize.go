// Package sanitize cleans untrusted fragments before they reach the composer.
//
// The composer embeds fragments verbatim by contract. Callers rendering input
// they do not control wrap it with Fragment first.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Fragment strips scripts, event handlers and unknown elements while keeping
// the markup and inline styling a social card needs.
func Fragment(html string) string {
	return fragmentPolicy().Sanitize(html)
}

func fragmentPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		p.AllowStyles(
			"color", "background", "background-color", "font-size", "font-weight",
			"font-style", "text-align", "text-transform", "letter-spacing",
			"line-height", "margin", "margin-top", "margin-bottom", "padding", "opacity",
		).Globally()
		p.AllowElements("span", "div", "section", "header", "footer", "small", "mark")
		policy = p
	})
	return policy
}
