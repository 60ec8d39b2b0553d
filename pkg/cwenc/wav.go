package cwenc

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVEncoder writes the sample buffer as an uncompressed PCM WAV file. It is
// the lossless fallback for players without FLAC support; the compression
// level is ignored because the format has none.
type WAVEncoder struct{}

func (WAVEncoder) Encode(path string, samples []int16, p Params) error {
	p = p.withDefaults()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, p.SampleRate, p.BitsPerSample, p.Channels, 1)

	data := make([]int, len(samples)*p.Channels)
	for i, s := range samples {
		for ch := 0; ch < p.Channels; ch++ {
			data[i*p.Channels+ch] = int(s)
		}
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: p.Channels,
			SampleRate:  p.SampleRate,
		},
		Data:           data,
		SourceBitDepth: p.BitsPerSample,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if p.Verify {
		return verifyWAV(path, samples, p)
	}
	return nil
}

// verifyWAV decodes the written file and compares it with the buffer that
// was encoded.
func verifyWAV(path string, samples []int16, p Params) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify: reading back %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("verify: decoding %s: %w", path, err)
	}

	if len(buf.Data) != len(samples)*p.Channels {
		return fmt.Errorf("%w: decoded %d samples, rendered %d",
			ErrVerifyFailed, len(buf.Data), len(samples)*p.Channels)
	}
	for i, s := range samples {
		if buf.Data[i*p.Channels] != int(s) {
			return fmt.Errorf("%w: sample %d differs", ErrVerifyFailed, i)
		}
	}
	return nil
}
