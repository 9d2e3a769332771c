package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

func TestReadUntilEnd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "stops at marker", input: "<h1>Hi</h1>\n<p>There</p>\nEND\n<p>ignored</p>\n", want: "<h1>Hi</h1>\n<p>There</p>"},
		{name: "marker with surrounding spaces", input: "a\n  END  \nb", want: "a"},
		{name: "eof without marker", input: "\n\n  <p>x</p>  \n", want: "<p>x</p>"},
		{name: "marker inside a line is content", input: "THE END\nEND", want: "THE END"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadUntilEnd(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestContentOrSample(t *testing.T) {
	t.Parallel()

	got, used := ContentOrSample("  \n ")
	require.True(t, used)
	require.Equal(t, SampleFragment, got)

	got, used = ContentOrSample("<p>mine</p>")
	require.False(t, used)
	require.Equal(t, "<p>mine</p>", got)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "post.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>file</p>\nEND\n"), 0o644))

	got, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "<p>file</p>\nEND\n", got, "files are read whole")

	got, err = Load("-", strings.NewReader("<p>pipe</p>\nEND\nrest"))
	require.NoError(t, err)
	require.Equal(t, "<p>pipe</p>", got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.html"), nil)
	require.Error(t, err)
}

func TestPlatformMenuRoundTrip(t *testing.T) {
	t.Parallel()

	options := PlatformOptions()
	require.Equal(t, []string{
		"1. instagram (1080 x 1350)",
		"2. facebook (1200 x 630)",
		"3. linkedin (1200 x 627)",
		"4. threads (1080 x 1350)",
		"5. All of the above",
	}, options)

	ids := SelectionFromOptions([]string{options[1], options[4]})
	require.Equal(t, []string{"2", "5"}, ids)

	specs, err := platform.Resolve(ids)
	require.NoError(t, err)
	require.Len(t, specs, 4)
}
