// Package codec defines the image codec used to turn compressed payload bytes
// into pixel buffers, plus a default implementation backed by the image
// format registry.
package codec

import (
	"bytes"
	"fmt"
	"image"

	// Formats understood by the default decoder
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDecoder decodes a complete compressed image. The returned image must
// not alias data.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
}

// ImageDecoderFunc is a proxy type for ImageDecoder
type ImageDecoderFunc func(data []byte) (image.Image, error)

// Decode implements ImageDecoder.
func (f ImageDecoderFunc) Decode(data []byte) (image.Image, error) {
	return f(data)
}

type registryDecoder struct{}

// NewImageDecoder returns an ImageDecoder that sniffs the payload and decodes
// PNG, JPEG, GIF, BMP, TIFF and WebP. PNG and TIFF keep 16 bit grayscale
// samples as *image.Gray16.
func NewImageDecoder() ImageDecoder {
	return registryDecoder{}
}

func (registryDecoder) Decode(data []byte) (image.Image, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("codec: %s image is empty", name)
	}
	return img, nil
}
