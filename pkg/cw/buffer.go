package cw

import (
	"encoding/binary"
	"time"
)

// Buffer is the append-only store of rendered 16-bit PCM samples. Appending
// is the only mutation; once rendering completes the buffer is read-only.
type Buffer struct {
	samples []int16
}

// Append copies a segment's samples onto the end of the buffer.
func (b *Buffer) Append(segment []int16) {
	b.samples = append(b.samples, segment...)
}

// Len returns the number of samples accumulated so far.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Samples returns the accumulated samples. Callers must not modify the
// returned slice.
func (b *Buffer) Samples() []int16 {
	return b.samples
}

// Bytes returns the samples as little-endian PCM bytes.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 2*len(b.samples))
	for i, s := range b.samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Duration returns the playback time of the buffer at the given sample rate.
func (b *Buffer) Duration(sampleRate float64) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.samples)) / sampleRate * float64(time.Second))
}
