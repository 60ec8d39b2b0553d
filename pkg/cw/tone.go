package cw

import "math"

// Tone holds the oscillator parameters: frequency in Hertz and peak
// amplitude as a raw 16-bit sample value.
type Tone struct {
	Frequency float64
	Volume    int
}

// NewTone validates the parameters and returns an immutable Tone. A
// frequency outside [60,3000] Hz becomes DefaultFrequency; a volume outside
// (0,32767] becomes DefaultVolume.
func NewTone(frequency float64, volume int) Tone {
	if frequency < minFrequency || frequency > maxFrequency {
		frequency = DefaultFrequency
	}
	if volume <= 0 || volume > math.MaxInt16 {
		volume = DefaultVolume
	}
	return Tone{Frequency: frequency, Volume: volume}
}

// renderTone produces n samples of a sine tone with a linear fade-in over the
// first rise samples and a linear fade-out over the last fall samples.
//
// The float result is truncated to int16 through an integer conversion, so an
// amplitude pushed past the 16-bit range wraps rather than clips. Volume is
// bounded well below that in practice; the wrap is kept as observed behavior
// rather than silently replaced with clamping.
func renderTone(n, rise, fall int, tone Tone, sampleRate float64) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / sampleRate
		s := float64(tone.Volume) * math.Sin(2*math.Pi*tone.Frequency*t)

		if i < rise {
			s *= float64(i) / float64(rise)
		} else if i > n-fall {
			s *= float64(n-i) / float64(fall)
		}

		samples[i] = int16(int64(s))
	}
	return samples
}

// renderSilence produces n samples of silence.
func renderSilence(n int) []int16 {
	return make([]int16, n)
}
