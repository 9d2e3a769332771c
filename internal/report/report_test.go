package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandshot/internal/model"
	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

func sampleResults() []model.RenderResult {
	return []model.RenderResult{
		{PlatformID: "1", Platform: "instagram", OutputPath: "out/instagram.png", Width: 1080, Height: 1350, Status: model.StatusSuccess, Duration: 40 * time.Millisecond},
		{PlatformID: "2", Platform: "facebook", OutputPath: "out/facebook.png", Width: 1200, Height: 630, Status: model.StatusFailed, Message: "exit status 1", Error: errors.New("render error on platform facebook: exit status 1")},
	}
}

func TestTablePlain(t *testing.T) {
	t.Parallel()

	out := Table(sampleResults(), false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Brandshot results", lines[0])
	assert.Equal(t, " ✓ instagram  1080x1350  out/instagram.png", lines[1])
	assert.Equal(t, " ✗ facebook   1200x630   out/facebook.png  exit status 1", lines[2])
	assert.Equal(t, "1 of 2 images written", lines[3])
	assert.NotContains(t, out, "\x1b[")
}

func TestTableEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Brandshot results\n0 of 0 images written", Table(nil, false))
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✓", StatusIcon(model.StatusSuccess))
	assert.Equal(t, "✗", StatusIcon(model.StatusFailed))
	assert.Equal(t, "⊘", StatusIcon(model.StatusCancelled))
	assert.Equal(t, "•", StatusIcon(model.StatusPending))
}

func TestPlatformsListsRegistry(t *testing.T) {
	t.Parallel()

	out := Platforms(platform.All(), false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " 1. instagram   1080 x 1350  ratio 1.250", lines[1])
	assert.Equal(t, " 2. facebook    1200 x 630   ratio 0.525", lines[2])
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleResults()))

	var decoded struct {
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
		Results   []struct {
			PlatformID string `json:"platform_id"`
			Platform   string `json:"platform"`
			Status     string `json:"status"`
			Width      int    `json:"width"`
			Error      string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Equal(t, 1, decoded.Succeeded)
	require.Equal(t, 1, decoded.Failed)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "instagram", decoded.Results[0].Platform)
	assert.Empty(t, decoded.Results[0].Error)
	assert.Equal(t, "2", decoded.Results[1].PlatformID)
	assert.Equal(t, 1200, decoded.Results[1].Width)
	assert.Contains(t, decoded.Results[1].Error, "facebook")
}
