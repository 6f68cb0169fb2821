package imagemsg

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFormat is returned when a format tag has neither one nor two fields.
	ErrMalformedFormat = errors.New("imagemsg: malformed format")
	// ErrUnsupportedCompression is returned when the second format field is not "compressedDepth".
	ErrUnsupportedCompression = errors.New("imagemsg: unsupported compression type")
	// ErrHeaderTooShort is returned when a compressed depth payload can't hold its header.
	ErrHeaderTooShort = errors.New("imagemsg: compressed depth header too short")
	// ErrCodecDecode is returned when the image codec can't decode the payload.
	ErrCodecDecode = errors.New("imagemsg: could not decode image")
	// ErrUnsupportedDepthEncoding is returned for depth encodings other than 16UC1 and 32FC1.
	ErrUnsupportedDepthEncoding = errors.New("imagemsg: unsupported depth encoding")
	// ErrInvalidHeaderSize is returned for a negative header size.
	ErrInvalidHeaderSize = errors.New("imagemsg: invalid header size")
	// ErrUnsupportedMessageType is returned by DecodeMessage for unknown message types.
	ErrUnsupportedMessageType = errors.New("imagemsg: unsupported message type")
)

// HeaderTooShortError tells the caller how many header bytes were needed and
// how many were available.
type HeaderTooShortError struct {
	Size     int
	Required int
}

func (e *HeaderTooShortError) Error() string {
	return fmt.Sprintf("%v: got %d bytes, need %d", ErrHeaderTooShort, e.Size, e.Required)
}

func (e *HeaderTooShortError) Unwrap() error {
	return ErrHeaderTooShort
}

// CodecError wraps a failure of the image codec. HeaderSize is set to the
// number of bytes stripped in front of the image on the compressed depth
// path and -1 otherwise.
type CodecError struct {
	HeaderSize int
	Err        error
}

func (e *CodecError) Error() string {
	if e.HeaderSize < 0 {
		return fmt.Sprintf("%v: %v", ErrCodecDecode, e.Err)
	}
	return fmt.Sprintf("%v: %v (header size is %d bytes, it may need to be changed)", ErrCodecDecode, e.Err, e.HeaderSize)
}

func (e *CodecError) Unwrap() []error {
	return []error{ErrCodecDecode, e.Err}
}
