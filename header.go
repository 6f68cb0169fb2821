package imagemsg

import (
	"encoding/binary"
	"math"
)

const (
	// DefaultHeaderSize is the header width written by compressed depth senders.
	DefaultHeaderSize = 12

	// int32 reserved, float32 quantA, float32 quantB
	depthHeaderFieldsSize = 12
)

// DepthHeader holds the quantization parameters prefixed to a compressed
// depth payload. Depth in the sender's unit is QuantA / (raw - QuantB).
type DepthHeader struct {
	Reserved int32
	QuantA   float32
	QuantB   float32
}

// DecodeDepthHeader reads the header from the first size bytes of b. All
// fields are little endian. Bytes past the three fields and before size are
// skipped.
func DecodeDepthHeader(b []byte, size int) (DepthHeader, error) {
	if size < 0 {
		return DepthHeader{}, ErrInvalidHeaderSize
	}
	if len(b) < size {
		return DepthHeader{}, &HeaderTooShortError{Size: len(b), Required: size}
	}
	if size < depthHeaderFieldsSize {
		return DepthHeader{}, &HeaderTooShortError{Size: size, Required: depthHeaderFieldsSize}
	}

	return DepthHeader{
		Reserved: int32(binary.LittleEndian.Uint32(b[0:4])),
		QuantA:   math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		QuantB:   math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}, nil
}

// Marshal returns the 12 byte little endian form of h.
func (h DepthHeader) Marshal() []byte {
	b := make([]byte, depthHeaderFieldsSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(h.Reserved))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(h.QuantA))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(h.QuantB))
	return b
}
