package imagemsg

import (
	"image"

	"github.com/pion/imagemsg/internal/logging"
	"github.com/pion/imagemsg/pkg/codec"
	"github.com/pion/imagemsg/pkg/frame"
	pionlogging "github.com/pion/logging"
)

// Result is the outcome of decoding one payload. Image is set for KindImage
// and Depth for KindDepth.
type Result struct {
	Format
	Image image.Image
	Depth *DepthMap
}

// Descriptor looks up the sample type and channel count the encoding name
// implies. The codec output isn't checked against it.
func (r *Result) Descriptor() (frame.Descriptor, error) {
	return frame.Lookup(r.Encoding)
}

// Decoder turns format tags and payloads into pixel buffers or depth maps.
// A Decoder holds no per call state and may be used concurrently.
type Decoder struct {
	DecoderOptions
	log pionlogging.LeveledLogger
}

// DecoderOptions stores parameters used by Decoder.
type DecoderOptions struct {
	headerSize    int
	imageDecoder  codec.ImageDecoder
	loggerFactory pionlogging.LoggerFactory
}

// DecoderOption is a type of Decoder functional option.
type DecoderOption func(*DecoderOptions)

// WithHeaderSize sets how many bytes precede the image in compressed depth
// payloads. Defaults to DefaultHeaderSize.
func WithHeaderSize(size int) DecoderOption {
	return func(o *DecoderOptions) {
		o.headerSize = size
	}
}

// WithImageDecoder replaces the codec used for the image part of payloads.
// A nil decoder keeps the default one.
func WithImageDecoder(d codec.ImageDecoder) DecoderOption {
	return func(o *DecoderOptions) {
		if d != nil {
			o.imageDecoder = d
		}
	}
}

// WithLoggerFactory specifies where the decoder logger comes from.
// A nil factory keeps the default one.
func WithLoggerFactory(f pionlogging.LoggerFactory) DecoderOption {
	return func(o *DecoderOptions) {
		if f != nil {
			o.loggerFactory = f
		}
	}
}

// NewDecoder constructs a Decoder with given variadic options
func NewDecoder(opts ...DecoderOption) *Decoder {
	o := DecoderOptions{
		headerSize:    DefaultHeaderSize,
		imageDecoder:  codec.NewImageDecoder(),
		loggerFactory: logging.Factory(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Decoder{
		DecoderOptions: o,
		log:            o.loggerFactory.NewLogger("imagemsg"),
	}
}

// HeaderSize returns the configured compressed depth header size.
func (d *Decoder) HeaderSize() int {
	return d.headerSize
}

// Decode decodes data according to the format tag.
//
// A single field tag, e.g. "bgr8", hands the whole payload to the codec and
// returns its image as is. A "<encoding>; compressedDepth" tag strips the
// depth header, decodes the rest with the codec and converts it to meters.
func (d *Decoder) Decode(tag string, data []byte) (*Result, error) {
	f, err := ParseFormat(tag)
	if err != nil {
		return nil, err
	}

	if f.Kind == KindDepth {
		depth, err := d.decodeDepth(f.Encoding, data)
		if err != nil {
			return nil, err
		}
		return &Result{Format: f, Depth: depth}, nil
	}

	d.log.Tracef("decoding %d bytes of %s image", len(data), f.Encoding)
	img, err := d.imageDecoder.Decode(data)
	if err != nil {
		d.log.Debugf("%s image: %v", f.Encoding, err)
		return nil, &CodecError{HeaderSize: -1, Err: err}
	}
	return &Result{Format: f, Image: img}, nil
}

func (d *Decoder) decodeDepth(encoding frame.Format, data []byte) (*DepthMap, error) {
	d.log.Tracef("decoding %d bytes of %s compressed depth, header size %d", len(data), encoding, d.headerSize)

	h, err := DecodeDepthHeader(data, d.headerSize)
	if err != nil {
		return nil, err
	}

	raw, err := d.imageDecoder.Decode(data[d.headerSize:])
	if err != nil {
		d.log.Debugf("%s compressed depth: %v", encoding, err)
		return nil, &CodecError{HeaderSize: d.headerSize, Err: err}
	}

	return reconstructDepth(raw, encoding, h)
}
