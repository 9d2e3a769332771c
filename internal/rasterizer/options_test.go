package rasterizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

func TestForBuildsExactCanvasOptions(t *testing.T) {
	t.Parallel()

	spec, err := platform.Lookup("facebook")
	require.NoError(t, err)

	opts := For(spec)
	require.Equal(t, Options{
		Platform:          "facebook",
		Format:            "png",
		Width:             1200,
		Height:            630,
		Encoding:          "UTF-8",
		DisableSmartWidth: true,
	}, opts)

	require.Equal(t, []string{
		"--format", "png",
		"--width", "1200",
		"--height", "630",
		"--encoding", "UTF-8",
		"--disable-smart-width",
	}, opts.Args())
}

func TestArgsOmitsUnsetOptions(t *testing.T) {
	t.Parallel()

	require.Empty(t, Options{Platform: "ignored"}.Args())
	require.Equal(t, []string{"--width", "10"}, Options{Width: 10}.Args())
}
