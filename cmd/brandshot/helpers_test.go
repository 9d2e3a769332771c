package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandshot/internal/input"
	"github.com/alexisbeaulieu97/brandshot/internal/rasterizer"
	apperrors "github.com/alexisbeaulieu97/brandshot/pkg/errors"
)

type fakeRasterizer struct {
	mu   sync.Mutex
	docs map[string]string
	fail map[string]bool
}

func newFakeRasterizer() *fakeRasterizer {
	return &fakeRasterizer{docs: map[string]string{}, fail: map[string]bool{}}
}

func (f *fakeRasterizer) Rasterize(_ context.Context, document, outPath string, opts rasterizer.Options) error {
	f.mu.Lock()
	f.docs[opts.Platform] = document
	fail := f.fail[opts.Platform]
	f.mu.Unlock()

	if fail {
		return apperrors.NewRasterizerError(opts.Platform, outPath, errors.New("exit status 1"))
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, image.NewGray(image.Rect(0, 0, opts.Width, opts.Height)))
}

func (f *fakeRasterizer) document(platform string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[platform]
}

func (f *fakeRasterizer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

type stubPrompter struct {
	platforms []string
	content   string
	overrides string
	asked     []string
}

func (p *stubPrompter) SelectPlatforms(context.Context) ([]string, error) {
	p.asked = append(p.asked, "platforms")
	return p.platforms, nil
}

func (p *stubPrompter) Content(context.Context) (string, error) {
	p.asked = append(p.asked, "content")
	return p.content, nil
}

func (p *stubPrompter) Overrides(context.Context) (string, error) {
	p.asked = append(p.asked, "overrides")
	return p.overrides, nil
}

// stubRenderEnv swaps the process-level collaborators and returns the
// rasterizer settings the command ends up building.
func stubRenderEnv(t *testing.T, raster rasterizer.Rasterizer, prompter input.Prompter) *rasterizer.Config {
	t.Helper()

	origRasterizer, origPrompter, origStdin := newRasterizer, newPrompter, stdinIsTerminal
	t.Cleanup(func() {
		newRasterizer, newPrompter, stdinIsTerminal = origRasterizer, origPrompter, origStdin
	})

	captured := &rasterizer.Config{}
	newRasterizer = func(cfg rasterizer.Config) rasterizer.Rasterizer {
		*captured = cfg
		return raster
	}
	stdinIsTerminal = func() bool { return prompter != nil }
	newPrompter = func() input.Prompter { return prompter }
	return captured
}

func executeCommand(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd.Execute()
}

// runCLI executes the root command with stdin and returns stdout and stderr separately.
func runCLI(stdin string, args ...string) (string, string, error) {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
