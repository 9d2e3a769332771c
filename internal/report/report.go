// Package report presents render results to people and to scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandshot/internal/model"
	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

// StatusIcon returns the glyph for a render status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusSuccess:
		return "✓"
	case model.StatusFailed:
		return "✗"
	case model.StatusCancelled:
		return "⊘"
	default:
		return "•"
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case model.StatusSuccess:
		return successStyle
	case model.StatusFailed:
		return failureStyle
	default:
		return cancelledStyle
	}
}

// Table renders one line per platform followed by a summary. With styled set
// the output carries terminal colours.
func Table(results []model.RenderResult, styled bool) string {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	nameWidth := 0
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Platform))
	}

	lines := make([]string, 0, len(results)+2)
	lines = append(lines, paint(titleStyle, "Brandshot results"))
	for _, res := range results {
		line := fmt.Sprintf(" %s %-*s %5dx%-5d %s",
			paint(statusStyle(res.Status), StatusIcon(res.Status)),
			nameWidth, res.Platform, res.Width, res.Height, res.OutputPath)
		if !res.Succeeded() && strings.TrimSpace(res.Message) != "" {
			line += "  " + paint(detailStyle, res.Message)
		}
		lines = append(lines, line)
	}

	succeeded := len(results) - len(model.Failures(results))
	lines = append(lines, paint(summaryStyle, fmt.Sprintf("%d of %d images written", succeeded, len(results))))
	return strings.Join(lines, "\n")
}

// Platforms lists the registry one canvas per line.
func Platforms(specs []platform.Spec, styled bool) string {
	lines := make([]string, 0, len(specs)+1)
	header := "Platforms"
	if styled {
		header = titleStyle.Render(header)
	}
	lines = append(lines, header)
	for _, spec := range specs {
		lines = append(lines, fmt.Sprintf(" %s. %-10s %5d x %-5d ratio %.3f",
			spec.ID, spec.Name, spec.Width, spec.Height, spec.AspectRatio()))
	}
	return strings.Join(lines, "\n")
}

type jsonResult struct {
	model.RenderResult
	Error string `json:"error,omitempty"`
}

type jsonReport struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []jsonResult `json:"results"`
}

// JSON writes results as an indented document.
func JSON(w io.Writer, results []model.RenderResult) error {
	doc := jsonReport{Results: make([]jsonResult, 0, len(results))}
	for _, res := range results {
		entry := jsonResult{RenderResult: res}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		if res.Succeeded() {
			doc.Succeeded++
		} else {
			doc.Failed++
		}
		doc.Results = append(doc.Results, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
