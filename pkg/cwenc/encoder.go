// Package cwenc writes rendered PCM sample buffers to lossless audio files.
// The rendering core hands over a finished buffer exactly once; the encoder
// consumes it end to end and either produces a complete file or fails the
// run. FLAC and WAV adapters are selected by output file extension.
package cwenc

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Defaults for the output format. Out-of-range parameter values fall back to
// these rather than failing.
const (
	DefaultSampleRate       = 44100
	DefaultChannels         = 1
	DefaultBitsPerSample    = 16
	DefaultCompressionLevel = 8

	maxChannels = 8
)

var (
	// ErrStreamMismatch reports that fewer samples reached the encoder than
	// the buffer holds. The encode is aborted; the output file is not
	// guaranteed complete.
	ErrStreamMismatch = errors.New("sample count mismatch while encoding")

	// ErrVerifyFailed reports that the written file does not decode back to
	// the rendered samples.
	ErrVerifyFailed = errors.New("verification of written file failed")
)

// Params describes the output format handed to an encoder together with the
// sample buffer.
type Params struct {
	SampleRate       int
	Channels         int
	BitsPerSample    int
	// CompressionLevel applies to FLAC only; WAV has nothing to compress.
	// 0 is a valid level meaning all-verbatim encoding, so the zero value
	// of Params encodes verbatim rather than at the default level.
	CompressionLevel int
	Verify           bool // re-read the written file and compare
}

// withDefaults replaces out-of-range fields with the defaults.
func (p Params) withDefaults() Params {
	if p.SampleRate <= 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Channels < 1 || p.Channels > maxChannels {
		p.Channels = DefaultChannels
	}
	if p.BitsPerSample != DefaultBitsPerSample {
		// The rendering pipeline is fixed at 16-bit signed samples.
		p.BitsPerSample = DefaultBitsPerSample
	}
	if p.CompressionLevel < 0 || p.CompressionLevel > 8 {
		p.CompressionLevel = DefaultCompressionLevel
	}
	return p
}

// Encoder consumes a finished mono sample buffer and writes it to path.
// Multi-channel output duplicates the mono samples across channels.
type Encoder interface {
	Encode(path string, samples []int16, p Params) error
}

// ForPath selects an encoder by the output file's extension.
func ForPath(path string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		return FLACEncoder{}, nil
	case ".wav":
		return WAVEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .flac or .wav)", filepath.Ext(path))
	}
}

// isConstant reports whether every sample in the block has the same value.
// Rendered CW output is mostly silence and such blocks compress to a single
// value.
func isConstant(block []int16) bool {
	for _, s := range block {
		if s != block[0] {
			return false
		}
	}
	return true
}
