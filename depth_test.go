package imagemsg

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/pion/imagemsg/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGray16(width, height int, values ...uint16) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for i, v := range values {
		img.SetGray16(i%width, i/width, color.Gray16{Y: v})
	}
	return img
}

func TestReconstructDepthMillimeters(t *testing.T) {
	raw := newGray16(2, 2, 0, 1, 5000, 65535)

	depth, err := reconstructDepth(raw, frame.Format16UC1, DepthHeader{QuantA: 123, QuantB: 4})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), depth.Bounds())
	assert.Equal(t, float32(0), depth.Depth(0, 0))
	assert.InDelta(t, 0.001, depth.Depth(1, 0), 1e-9)
	assert.InDelta(t, 5.0, depth.Depth(0, 1), 1e-6)
	assert.InDelta(t, 65.535, depth.Depth(1, 1), 1e-5)
}

func TestReconstructDepthMeters(t *testing.T) {
	raw := newGray16(3, 1, 4, 2, 10)

	depth, err := reconstructDepth(raw, frame.Format32FC1, DepthHeader{QuantA: 1, QuantB: 0})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.5, 0.1}, depth.Pix)

	depth, err = reconstructDepth(raw, frame.Format32FC1, DepthHeader{QuantA: 3, QuantB: 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3, 3.0 / 9}, depth.Pix)
}

func TestReconstructDepthUsesCodecOutput(t *testing.T) {
	// Every sample must come from the image handed in, not a stale buffer.
	h := DepthHeader{QuantA: 8, QuantB: 0}
	a, err := reconstructDepth(newGray16(1, 1, 2), frame.Format32FC1, h)
	require.NoError(t, err)
	b, err := reconstructDepth(newGray16(1, 1, 4), frame.Format32FC1, h)
	require.NoError(t, err)

	assert.Equal(t, float32(4), a.Depth(0, 0))
	assert.Equal(t, float32(2), b.Depth(0, 0))
}

func TestReconstructDepthDivisionByZero(t *testing.T) {
	raw := newGray16(2, 1, 7, 0)

	depth, err := reconstructDepth(raw, frame.Format32FC1, DepthHeader{QuantA: 1, QuantB: 7})
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(depth.Depth(0, 0)), 1))
	assert.InDelta(t, -1.0/7, depth.Depth(1, 0), 1e-7)

	depth, err = reconstructDepth(newGray16(1, 1, 7), frame.Format32FC1, DepthHeader{QuantA: 0, QuantB: 7})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(depth.Depth(0, 0))))
}

func TestReconstructDepthUnsupported(t *testing.T) {
	raw := newGray16(1, 1, 1)
	for _, f := range []frame.Format{frame.FormatMono16, frame.Format64FC1, frame.Format8UC1, "depth"} {
		_, err := reconstructDepth(raw, f, DepthHeader{})
		assert.ErrorIs(t, err, ErrUnsupportedDepthEncoding, string(f))
	}
}

func TestReconstructDepthSampleTypes(t *testing.T) {
	rect := image.Rect(0, 0, 1, 1)

	gray := image.NewGray(rect)
	gray.SetGray(0, 0, color.Gray{Y: 200})

	nrgba := image.NewNRGBA(rect)
	nrgba.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 10, B: 30, A: 0xFF})

	rgba := image.NewRGBA(rect)
	rgba.SetRGBA(0, 0, color.RGBA{R: 200, G: 90, B: 0, A: 0xFF})

	paletted := image.NewPaletted(rect, color.Palette{
		color.Gray{Y: 0},
		color.Gray{Y: 200},
	})
	paletted.SetColorIndex(0, 0, 1)

	alpha := image.NewAlpha(rect)
	alpha.SetAlpha(0, 0, color.Alpha{A: 200})

	nrgba64 := image.NewNRGBA64(rect)
	nrgba64.SetNRGBA64(0, 0, color.NRGBA64{R: 1000, G: 7, B: 7, A: 0xFFFF})

	rgba64 := image.NewRGBA64(rect)
	rgba64.SetRGBA64(0, 0, color.RGBA64{R: 1000, G: 1000, B: 1000, A: 0xFFFF})

	alpha16 := image.NewAlpha16(rect)
	alpha16.SetAlpha16(0, 0, color.Alpha16{A: 1000})

	cases := map[string]struct {
		raw      image.Image
		expected float64
	}{
		"Gray":     {raw: gray, expected: 0.2},
		"NRGBA":    {raw: nrgba, expected: 0.2},
		"RGBA":     {raw: rgba, expected: 0.2},
		"Paletted": {raw: paletted, expected: 0.2},
		"Alpha":    {raw: alpha, expected: 0.2},
		"NRGBA64":  {raw: nrgba64, expected: 1.0},
		"RGBA64":   {raw: rgba64, expected: 1.0},
		"Alpha16":  {raw: alpha16, expected: 1.0},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			depth, err := reconstructDepth(c.raw, frame.Format16UC1, DepthHeader{})
			require.NoError(t, err)
			assert.InDelta(t, c.expected, depth.Depth(0, 0), 1e-6)
		})
	}
}

func TestReconstructDepthOffsetBounds(t *testing.T) {
	raw := newGray16(4, 4,
		0, 0, 0, 0,
		0, 1000, 2000, 0,
		0, 3000, 4000, 0,
		0, 0, 0, 0,
	).SubImage(image.Rect(1, 1, 3, 3))

	depth, err := reconstructDepth(raw, frame.Format16UC1, DepthHeader{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 1, 3, 3), depth.Bounds())
	assert.InDelta(t, 1.0, depth.Depth(1, 1), 1e-6)
	assert.InDelta(t, 4.0, depth.Depth(2, 2), 1e-6)
	assert.Equal(t, float32(0), depth.Depth(0, 0))
}

func TestDepthMapStats(t *testing.T) {
	depth := NewDepthMap(image.Rect(0, 0, 3, 2))
	copy(depth.Pix, []float32{
		1, 2, float32(math.Inf(1)),
		3, float32(math.NaN()), 6,
	})

	s := depth.Stats()
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 4, s.Valid)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.Equal(t, 3.0, s.Mean)

	empty := NewDepthMap(image.Rect(0, 0, 1, 1))
	empty.SetDepth(0, 0, float32(math.NaN()))
	assert.Equal(t, DepthStats{Total: 1}, empty.Stats())
}
