package frame

import "fmt"

// ScalarType is the element type of a single channel sample.
type ScalarType int

const (
	Uint8 ScalarType = iota + 1
	Int8
	Uint16
	Int16
	Int32
	Float32
	Float64
)

func (s ScalarType) String() string {
	switch s {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("ScalarType(%d)", int(s))
	}
}

// Size returns the number of bytes one sample occupies, or 0 for an
// undefined type.
func (s ScalarType) Size() int {
	switch s {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}
