package imagemsg

import (
	"fmt"
	"strings"

	"github.com/pion/imagemsg/pkg/frame"
)

// CompressionDepth is the only compression scheme understood after the
// encoding name in a format tag.
const CompressionDepth = "compressedDepth"

// Kind tells how a payload has to be decoded.
type Kind int

const (
	// KindImage payloads are a single image file handled by the codec.
	KindImage Kind = iota + 1
	// KindDepth payloads are a quantization header followed by an image file.
	KindDepth
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindDepth:
		return "depth"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Format is a parsed format tag of the form "<encoding>" or
// "<encoding>; compressedDepth".
type Format struct {
	Kind        Kind
	Encoding    frame.Format
	Compression string
}

func (f Format) String() string {
	if f.Compression == "" {
		return string(f.Encoding)
	}
	return string(f.Encoding) + "; " + f.Compression
}

// ParseFormat splits tag on ';' and classifies it. The encoding name isn't
// checked against the encoding table.
func ParseFormat(tag string) (Format, error) {
	fields := strings.Split(tag, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch len(fields) {
	case 1:
		return Format{Kind: KindImage, Encoding: frame.Format(fields[0])}, nil
	case 2:
		if fields[1] != CompressionDepth {
			return Format{}, fmt.Errorf("%w: expected %q, got %q", ErrUnsupportedCompression, CompressionDepth, fields[1])
		}
		return Format{Kind: KindDepth, Encoding: frame.Format(fields[0]), Compression: fields[1]}, nil
	default:
		return Format{}, fmt.Errorf("%w: %q has %d fields", ErrMalformedFormat, tag, len(fields))
	}
}
