// Package imagemsg decodes compressed image messages into pixel buffers and
// compressed depth messages into depth maps in meters.
//
// A message carries a format tag and a payload. A tag naming only an
// encoding, e.g. "bgr8", marks a plain image file that is handed to the
// image codec. A tag of the form "16UC1; compressedDepth" or
// "32FC1; compressedDepth" marks a depth payload: a small header with
// quantization parameters followed by an image file holding the raw samples.
package imagemsg
