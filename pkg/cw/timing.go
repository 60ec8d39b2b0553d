package cw

// Defaults and accepted ranges for the tunable rendering parameters.
// Values outside their range fall back to the default instead of failing,
// so a bad flag can never abort a run.
const (
	DefaultWPM        = 18
	DefaultFrequency  = 600.0
	DefaultVolume     = 16384 / 2
	DefaultSampleRate = 44100.0

	minWPM = 1
	maxWPM = 100

	minFrequency = 60.0
	maxFrequency = 3000.0
)

// Timing derives every segment duration from the sending speed and the
// Farnsworth spacing speed. One unit is 60/(50*wpm) seconds, per the PARIS
// standard (a dit is one unit, one standard word is 50 units).
//
// Dits, dahs and the gaps inside a character run at the sending speed.
// The gaps between characters and between words run at the Farnsworth speed,
// which may be slower to give learners time to copy.
//
// Useful timing details: https://morsecode.world/international/timing.html
type Timing struct {
	SampleRate float64
	WPM        int
	FWPM       int
}

// NewTiming validates the speeds and returns an immutable Timing. A wpm
// outside [1,100] becomes DefaultWPM; an unset or out-of-range fwpm becomes
// the sending speed.
func NewTiming(sampleRate float64, wpm, fwpm int) Timing {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if wpm < minWPM || wpm > maxWPM {
		wpm = DefaultWPM
	}
	if fwpm < minWPM || fwpm > maxWPM {
		fwpm = wpm
	}
	return Timing{SampleRate: sampleRate, WPM: wpm, FWPM: fwpm}
}

// unitSamples is the whole number of samples in one timing unit at the given
// speed. Truncation happens here, so multi-unit durations stay exact
// multiples of the single unit.
func (t Timing) unitSamples(wpm int) int {
	return int(t.SampleRate * 60.0 / (50.0 * float64(wpm)))
}

func (t Timing) DitSamples() int { return 1 * t.unitSamples(t.WPM) }
func (t Timing) DahSamples() int { return 3 * t.unitSamples(t.WPM) }

// IntraCharSamples is the gap between symbols inside one character.
func (t Timing) IntraCharSamples() int { return 1 * t.unitSamples(t.WPM) }

// InterCharSamples is the gap between two characters.
func (t Timing) InterCharSamples() int { return 3 * t.unitSamples(t.FWPM) }

// WordGapSamples is 5 units rather than the canonical 7 because a rendered
// word gap always sits between two inter-character gaps that bring it up to
// full length.
func (t Timing) WordGapSamples() int { return 5 * t.unitSamples(t.FWPM) }

// RiseSamples and FallSamples shape the tone envelope so keying doesn't
// click: 10% of a dit on each end.
func (t Timing) RiseSamples() int { return t.DitSamples() / 10 }
func (t Timing) FallSamples() int { return t.DitSamples() / 10 }
