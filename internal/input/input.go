// Package input acquires the content fragment, style overrides and platform
// selection from files, pipes or an interactive terminal.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// EndMarker terminates multi-line input typed at a console.
const EndMarker = "END"

// SampleFragment is substituted when no content is supplied.
const SampleFragment = "<h1>Sample Heading</h1><p>Replace this with your HTML.</p>"

// ReadUntilEnd reads lines until one equal to EndMarker (ignoring surrounding
// whitespace) or EOF, and returns the trimmed text.
func ReadUntilEnd(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == EndMarker {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// ContentOrSample returns s, or SampleFragment when s is blank. The boolean
// reports whether the sample was used.
func ContentOrSample(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return SampleFragment, true
	}
	return s, false
}

// Load reads a whole file, or stdin when path is "-". Stdin honours EndMarker.
func Load(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		return ReadUntilEnd(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
