package imagemsg

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageType identifies the schema of a serialized message.
type MessageType string

const (
	// TypeCompressedImage is a compressed image or compressed depth message.
	TypeCompressedImage MessageType = "sensor_msgs/CompressedImage"
)

// Stamp is a message timestamp.
type Stamp struct {
	Secs  uint32 `json:"secs"`
	Nsecs uint32 `json:"nsecs"`
}

// Header is the standard message header.
type Header struct {
	Seq     uint32 `json:"seq"`
	Stamp   Stamp  `json:"stamp"`
	FrameID string `json:"frame_id"`
}

// CompressedImage carries a format tag and the compressed payload. In JSON,
// Data is base64 encoded.
type CompressedImage struct {
	Header Header `json:"header"`
	Format string `json:"format"`
	Data   []byte `json:"data"`
}

// UnmarshalCompressedImage parses the JSON form of a CompressedImage.
func UnmarshalCompressedImage(data []byte) (CompressedImage, error) {
	var m CompressedImage
	err := json.Unmarshal(data, &m)
	return m, err
}

// Marshal returns the JSON form of m.
func (m *CompressedImage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeCompressedImage decodes the payload of m.
func (d *Decoder) DecodeCompressedImage(m *CompressedImage) (*Result, error) {
	return d.Decode(m.Format, m.Data)
}

type convertFunc func(d *Decoder, raw []byte) (*Result, error)

func convertCompressedImage(d *Decoder, raw []byte) (*Result, error) {
	m, err := UnmarshalCompressedImage(raw)
	if err != nil {
		return nil, fmt.Errorf("imagemsg: %s: %w", TypeCompressedImage, err)
	}
	return d.DecodeCompressedImage(&m)
}

func converterFor(t MessageType) (convertFunc, error) {
	switch t {
	case TypeCompressedImage:
		return convertCompressedImage, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMessageType, t)
	}
}

// DecodeMessage decodes the JSON form of a message of type t.
func (d *Decoder) DecodeMessage(t MessageType, raw []byte) (*Result, error) {
	convert, err := converterFor(t)
	if err != nil {
		return nil, err
	}
	return convert(d, raw)
}
