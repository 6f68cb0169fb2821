package imagemsg

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/pion/imagemsg/pkg/frame"
	"gonum.org/v1/gonum/floats"
)

// DepthMap is a single channel image of depths in meters.
type DepthMap struct {
	// Pix holds the depth samples. The sample at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix    []float32
	Stride int
	Rect   image.Rectangle
}

// NewDepthMap returns a zeroed DepthMap covering r.
func NewDepthMap(r image.Rectangle) *DepthMap {
	return &DepthMap{
		Pix:    make([]float32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (d *DepthMap) Bounds() image.Rectangle {
	return d.Rect
}

func (d *DepthMap) PixOffset(x, y int) int {
	return (y-d.Rect.Min.Y)*d.Stride + (x - d.Rect.Min.X)
}

// Depth returns the depth at (x, y) in meters, or 0 outside the bounds.
func (d *DepthMap) Depth(x, y int) float32 {
	if !(image.Point{x, y}.In(d.Rect)) {
		return 0
	}
	return d.Pix[d.PixOffset(x, y)]
}

// SetDepth stores v meters at (x, y). Points outside the bounds are ignored.
func (d *DepthMap) SetDepth(x, y int, v float32) {
	if !(image.Point{x, y}.In(d.Rect)) {
		return
	}
	d.Pix[d.PixOffset(x, y)] = v
}

// DepthStats summarizes the finite samples of a DepthMap.
type DepthStats struct {
	Min, Max, Mean float64
	// Valid counts finite samples, Total counts all of them.
	Valid, Total int
}

// Stats computes DepthStats. Infinite and NaN samples, which come from
// raw values equal to the quantization offset, are left out.
func (d *DepthMap) Stats() DepthStats {
	dx, dy := d.Rect.Dx(), d.Rect.Dy()
	s := DepthStats{Total: dx * dy}
	valid := make([]float64, 0, s.Total)
	for y := 0; y < dy; y++ {
		row := d.Pix[y*d.Stride : y*d.Stride+dx]
		for _, v := range row {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			valid = append(valid, f)
		}
	}
	s.Valid = len(valid)
	if s.Valid == 0 {
		return s
	}
	s.Min = floats.Min(valid)
	s.Max = floats.Max(valid)
	s.Mean = floats.Sum(valid) / float64(s.Valid)
	return s
}

// rawSampler returns a reader of the first channel of img at the bit depth
// the codec decoded it with, so a raw 200 reads as 200 whatever the image type.
func rawSampler(img image.Image) func(x, y int) float64 {
	switch src := img.(type) {
	case *image.Gray16:
		return func(x, y int) float64 { return float64(src.Gray16At(x, y).Y) }
	case *image.Gray:
		return func(x, y int) float64 { return float64(src.GrayAt(x, y).Y) }
	case *image.NRGBA:
		return func(x, y int) float64 { return float64(src.Pix[src.PixOffset(x, y)]) }
	case *image.RGBA:
		return func(x, y int) float64 { return float64(src.Pix[src.PixOffset(x, y)]) }
	case *image.NRGBA64:
		return func(x, y int) float64 {
			i := src.PixOffset(x, y)
			return float64(uint16(src.Pix[i])<<8 | uint16(src.Pix[i+1]))
		}
	case *image.RGBA64:
		return func(x, y int) float64 {
			i := src.PixOffset(x, y)
			return float64(uint16(src.Pix[i])<<8 | uint16(src.Pix[i+1]))
		}
	case *image.Paletted:
		return func(x, y int) float64 {
			c := src.At(x, y)
			if c == nil {
				return 0
			}
			r, _, _, _ := c.RGBA()
			return float64(r >> 8)
		}
	default:
		wide := is16Bit(img.ColorModel())
		return func(x, y int) float64 {
			r, _, _, _ := img.At(x, y).RGBA()
			if wide {
				return float64(r)
			}
			return float64(r >> 8)
		}
	}
}

func is16Bit(m color.Model) bool {
	switch m {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model, color.Alpha16Model:
		return true
	default:
		return false
	}
}

// reconstructDepth turns the codec output of a compressed depth payload into
// meters. 16UC1 samples are taken as is, 32FC1 samples are dequantized with
// h first. Raw values equal to QuantB yield Inf or NaN.
func reconstructDepth(raw image.Image, encoding frame.Format, h DepthHeader) (*DepthMap, error) {
	scale, ok := frame.UnitScale(encoding)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDepthEncoding, string(encoding))
	}

	var convert func(r float64) float32
	switch encoding {
	case frame.FormatDepthMillimeters:
		convert = func(r float64) float32 {
			return float32(r * scale)
		}
	case frame.FormatDepthMeters:
		convert = func(r float64) float32 {
			d := h.QuantA / (float32(r) - h.QuantB)
			return float32(float64(d) * scale)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDepthEncoding, string(encoding))
	}

	bounds := raw.Bounds()
	sample := rawSampler(raw)
	depth := NewDepthMap(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			depth.SetDepth(x, y, convert(sample(x, y)))
		}
	}
	return depth, nil
}
