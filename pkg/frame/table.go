package frame

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEncoding is returned when a format has no entry in the encoding table.
var ErrUnknownEncoding = errors.New("frame: unknown encoding")

// Descriptor tells the sample type and channel count implied by a Format.
type Descriptor struct {
	Type     ScalarType
	Channels int
}

// PixelSize returns the number of bytes one pixel occupies.
func (d Descriptor) PixelSize() int {
	return d.Type.Size() * d.Channels
}

// Populated once at init and only read afterwards, so concurrent lookups need no locking.
var descriptors = map[Format]Descriptor{
	FormatRGB8:   {Uint8, 3},
	FormatRGBA8:  {Uint8, 4},
	FormatRGB16:  {Uint16, 3},
	FormatRGBA16: {Uint16, 4},
	FormatBGR8:   {Uint8, 3},
	FormatBGRA8:  {Uint8, 4},
	FormatBGR16:  {Uint16, 3},
	FormatBGRA16: {Uint16, 4},
	FormatMono8:  {Uint8, 1},
	FormatMono16: {Uint16, 1},

	FormatBayerRGGB8:  {Uint8, 1},
	FormatBayerBGGR8:  {Uint8, 1},
	FormatBayerGBRG8:  {Uint8, 1},
	FormatBayerGRBG8:  {Uint8, 1},
	FormatBayerRGGB16: {Uint16, 1},
	FormatBayerBGGR16: {Uint16, 1},
	FormatBayerGBRG16: {Uint16, 1},
	FormatBayerGRBG16: {Uint16, 1},

	Format8UC1:  {Uint8, 1},
	Format8UC2:  {Uint8, 2},
	Format8UC3:  {Uint8, 3},
	Format8UC4:  {Uint8, 4},
	Format8SC1:  {Int8, 1},
	Format8SC2:  {Int8, 2},
	Format8SC3:  {Int8, 3},
	Format8SC4:  {Int8, 4},
	Format16UC1: {Uint16, 1},
	Format16UC2: {Uint16, 2},
	Format16UC3: {Uint16, 3},
	Format16UC4: {Uint16, 4},
	Format16SC1: {Int16, 1},
	Format16SC2: {Int16, 2},
	Format16SC3: {Int16, 3},
	Format16SC4: {Int16, 4},
	Format32SC1: {Int32, 1},
	Format32SC2: {Int32, 2},
	Format32SC3: {Int32, 3},
	Format32SC4: {Int32, 4},
	Format32FC1: {Float32, 1},
	Format32FC2: {Float32, 2},
	Format32FC3: {Float32, 3},
	Format32FC4: {Float32, 4},
	Format64FC1: {Float64, 1},
	Format64FC2: {Float64, 2},
	Format64FC3: {Float64, 3},
	Format64FC4: {Float64, 4},
}

// Multiplier from a depth format's native unit to meters.
var unitScales = map[Format]float64{
	FormatDepthMillimeters: 1e-3,
	FormatDepthMeters:      1.0,
}

// Lookup returns the descriptor of f.
func Lookup(f Format) (Descriptor, error) {
	d, ok := descriptors[f]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(f))
	}
	return d, nil
}

// UnitScale returns the factor converting samples of depth format f to meters.
// Only FormatDepthMillimeters and FormatDepthMeters have one.
func UnitScale(f Format) (float64, bool) {
	s, ok := unitScales[f]
	return s, ok
}

// Formats lists every format known to Lookup in lexical order.
func Formats() []Format {
	fs := make([]Format, 0, len(descriptors))
	for f := range descriptors {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}
