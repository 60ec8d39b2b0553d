package cwenc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

const (
	// flacBlockSize is the number of samples fed to the encoder per frame.
	flacBlockSize = 1024

	// minFLACBlock is the smallest block size the FLAC format allows a
	// stream to declare.
	minFLACBlock = 16
)

// FLACEncoder writes the sample buffer as a FLAC stream. Blocks of uniform
// value (silence, which dominates CW audio) are written as constant
// subframes, everything else verbatim. The total sample count is declared up
// front so players can report duration before decoding.
type FLACEncoder struct{}

func (FLACEncoder) Encode(path string, samples []int16, p Params) error {
	p = p.withDefaults()

	if n := len(samples); n > 0 && n < minFLACBlock {
		return fmt.Errorf("cannot encode %d samples: a FLAC stream needs at least %d", n, minFLACBlock)
	}

	// A trailing block below the format's minimum cannot be written as-is.
	// Its samples are rebalanced with the preceding block instead, which
	// makes the stream variable-block-size.
	tail := len(samples) % flacBlockSize
	fixedBlockSize := tail == 0 || tail >= minFLACBlock

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	info := &meta.StreamInfo{
		BlockSizeMin:  flacBlockSize,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(p.SampleRate),
		NChannels:     uint8(p.Channels),
		BitsPerSample: uint8(p.BitsPerSample),
		NSamples:      uint64(len(samples)),
	}
	if !fixedBlockSize {
		info.BlockSizeMin = minFLACBlock
	}
	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		return fmt.Errorf("initializing FLAC encoder: %w", err)
	}

	written := 0
	for off := 0; off < len(samples); {
		end := off + flacBlockSize
		if end > len(samples) {
			end = len(samples)
		}
		if rem := len(samples) - end; rem > 0 && rem < minFLACBlock {
			end = len(samples) - minFLACBlock
		}
		block := samples[off:end]

		// Fixed-size streams number frames, variable-size streams number
		// the frame's first sample.
		num := uint64(off)
		if fixedBlockSize {
			num = uint64(off / flacBlockSize)
		}
		if err := writeFLACFrame(enc, block, num, fixedBlockSize, p); err != nil {
			enc.Close()
			return err
		}
		written += len(block)
		off = end
	}
	if written != len(samples) {
		enc.Close()
		return fmt.Errorf("%w: fed %d of %d samples", ErrStreamMismatch, written, len(samples))
	}

	// Close flushes the stream, rewrites the header and closes the file.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing FLAC stream: %w", err)
	}

	if p.Verify {
		return verifyFLAC(path, samples, p)
	}
	return nil
}

// writeFLACFrame encodes one block. The mono buffer is duplicated across
// channels when more than one is requested.
func writeFLACFrame(enc *flac.Encoder, block []int16, num uint64, fixedBlockSize bool, p Params) error {
	hdr := frame.Header{
		HasFixedBlockSize: fixedBlockSize,
		BlockSize:         uint16(len(block)),
		SampleRate:        uint32(p.SampleRate),
		Channels:          flacChannels(p.Channels),
		BitsPerSample:     uint8(p.BitsPerSample),
		Num:               num,
	}

	// Level 0 writes everything verbatim; any higher level collapses uniform
	// blocks (silence) into constant subframes.
	pred := frame.PredVerbatim
	if p.CompressionLevel > 0 && isConstant(block) {
		pred = frame.PredConstant
	}

	subframes := make([]*frame.Subframe, p.Channels)
	for ch := range subframes {
		data := make([]int32, len(block))
		for i, s := range block {
			data[i] = int32(s)
		}
		subframes[ch] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: pred},
			NSamples:  len(block),
			Samples:   data,
		}
	}

	if err := enc.WriteFrame(&frame.Frame{Header: hdr, Subframes: subframes}); err != nil {
		return fmt.Errorf("encoding FLAC frame %d: %w", num, err)
	}
	return nil
}

// flacChannels maps a channel count to the frame's channel layout. Beyond
// two channels FLAC assigns conventional surround layouts by count.
func flacChannels(n int) frame.Channels {
	switch n {
	case 1:
		return frame.ChannelsMono
	case 2:
		return frame.ChannelsLR
	default:
		return frame.Channels(n - 1)
	}
}

// verifyFLAC re-parses the written file and compares it, sample by sample,
// with the buffer that was encoded. Only the first channel is compared; the
// remaining channels are copies of it by construction.
func verifyFLAC(path string, samples []int16, p Params) error {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("verify: reading back %s: %w", path, err)
	}
	defer stream.Close()

	if stream.Info.NSamples != uint64(len(samples)) {
		return fmt.Errorf("%w: header declares %d samples, rendered %d",
			ErrVerifyFailed, stream.Info.NSamples, len(samples))
	}

	n := 0
	for {
		fr, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("verify: decoding %s: %w", path, err)
		}
		if len(fr.Subframes) == 0 {
			return fmt.Errorf("%w: frame without subframes", ErrVerifyFailed)
		}
		sub := fr.Subframes[0]
		for i := 0; i < sub.NSamples; i++ {
			if n+i >= len(samples) {
				return fmt.Errorf("%w: decoded more than %d samples", ErrVerifyFailed, len(samples))
			}
			if sub.Samples[i] != int32(samples[n+i]) {
				return fmt.Errorf("%w: sample %d differs", ErrVerifyFailed, n+i)
			}
		}
		n += sub.NSamples
	}
	if n != len(samples) {
		return fmt.Errorf("%w: decoded %d samples, rendered %d", ErrVerifyFailed, n, len(samples))
	}
	return nil
}
