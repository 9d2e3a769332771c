// Package diff renders line-oriented differences between two documents.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
	elisionMarker   = "@@ ... @@"
)

// Unified compares before and after line by line. Unchanged runs longer than
// twice contextLines are elided. Identical input yields an empty string.
func Unified(before, after, beforeLabel, afterLabel string, contextLines int) string {
	if before == after {
		return ""
	}
	if contextLines < 0 {
		contextLines = 0
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	out := []string{"--- " + beforeLabel, "+++ " + afterLabel}
	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out = appendPrefixed(out, "-", lines)
		case diffmatchpatch.DiffInsert:
			out = appendPrefixed(out, "+", lines)
		case diffmatchpatch.DiffEqual:
			out = appendContext(out, lines, contextLines, i == 0, i == len(diffs)-1)
		}
	}

	if len(out) > maxDiffLines {
		out = append(out[:maxDiffLines], truncateMessage)
	}
	return strings.Join(out, "\n") + "\n"
}

// Stats counts removed and added lines.
func Stats(before, after string) (removed, added int) {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		}
	}
	return removed, added
}

// Summary formats Stats for a log line.
func Summary(before, after string) string {
	removed, added := Stats(before, after)
	return fmt.Sprintf("-%d +%d lines", removed, added)
}

func appendPrefixed(out []string, prefix string, lines []string) []string {
	for _, line := range lines {
		out = append(out, prefix+line)
	}
	return out
}

// appendContext keeps the lines adjacent to a change. A leading run keeps only
// its tail and a trailing run only its head.
func appendContext(out []string, lines []string, n int, first, last bool) []string {
	head, tail := n, n
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(lines) <= head+tail {
		return appendPrefixed(out, " ", lines)
	}

	out = appendPrefixed(out, " ", lines[:head])
	out = append(out, elisionMarker)
	return appendPrefixed(out, " ", lines[len(lines)-tail:])
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
