package typography

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputePlatformCanvases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		width  int
		height int
		want   Profile
	}{
		{
			name:  "instagram portrait clamps to ceiling",
			width: 1080, height: 1350,
			want: Profile{Base: 36, Heading1: 72, Heading3: 50, LineHeight: 58},
		},
		{
			name:  "facebook landscape clamps to floor",
			width: 1200, height: 630,
			want: Profile{Base: 16, Heading1: 32, Heading3: 22, LineHeight: 26},
		},
		{
			name:  "linkedin landscape clamps to floor",
			width: 1200, height: 627,
			want: Profile{Base: 16, Heading1: 32, Heading3: 22, LineHeight: 26},
		},
		{
			name:  "portrait inside clamp range",
			width: 900, height: 1100,
			want: Profile{Base: 31, Heading1: 62, Heading3: 43, LineHeight: 50},
		},
		{
			name:  "landscape inside clamp range",
			width: 1600, height: 900,
			want: Profile{Base: 22, Heading1: 44, Heading3: 31, LineHeight: 35},
		},
		{
			name:  "tall landscape caps at landscape ceiling",
			width: 3000, height: 2000,
			want: Profile{Base: 24, Heading1: 48, Heading3: 34, LineHeight: 38},
		},
		{
			name:  "small portrait floors at 24",
			width: 100, height: 200,
			want: Profile{Base: 24, Heading1: 48, Heading3: 34, LineHeight: 38},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Compute(tc.width, tc.height))
		})
	}
}

func TestComputeAspectBoundary(t *testing.T) {
	t.Parallel()

	require.True(t, IsPortrait(1000, 1200))
	require.False(t, IsPortrait(1000, 1199))
	require.False(t, IsPortrait(0, 1200))

	// Exactly 1.2 takes the portrait branch: 1200*0.028 = 33.6.
	require.Equal(t, 34, Compute(1000, 1200).Base)
	// Just below takes the landscape branch: 1199*0.024 = 28.776, capped at 24.
	require.Equal(t, 24, Compute(1000, 1199).Base)
}

func TestComputePortraitMonotonicAndBounded(t *testing.T) {
	t.Parallel()

	const width = 800
	prev := 0
	for height := 960; height <= 4000; height += 7 {
		base := Compute(width, height).Base
		require.GreaterOrEqual(t, base, prev, "height %d", height)
		require.GreaterOrEqual(t, base, PortraitMin)
		require.LessOrEqual(t, base, PortraitMax)
		prev = base
	}
}

func TestComputeLandscapeBounded(t *testing.T) {
	t.Parallel()

	for height := 1; height <= 2000; height += 13 {
		base := Compute(4000, height).Base
		require.GreaterOrEqual(t, base, LandscapeMin)
		require.LessOrEqual(t, base, LandscapeMax)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, Compute(1200, 630), Compute(1200, 630))
}

func TestScaleLadder(t *testing.T) {
	t.Parallel()

	scale := Compute(1080, 1350).Scale()
	require.Equal(t, Scale{H1: 72, H2: 61, H3: 50, H4: 43, H5: 40, H6: 36, Body: 36, Caption: 31}, scale)

	scale = Compute(1200, 630).Scale()
	require.Equal(t, Scale{H1: 32, H2: 27, H3: 22, H4: 19, H5: 18, H6: 16, Body: 16, Caption: 14}, scale)
}
