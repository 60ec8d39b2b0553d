// Package cw renders text as International Morse code audio: a timing model
// derives segment durations from words-per-minute speeds, five segment
// templates (dit, dah and three gap lengths) are synthesized once, and a
// single pass over the input concatenates copies of them into a sample
// buffer.
package cw

// Renderer holds the five pre-rendered segment templates for one run. The
// templates are immutable after construction; every occurrence of a segment
// in the output is a copy of its template, never regenerated.
type Renderer struct {
	timing Timing
	tone   Tone

	dit      []int16
	dah      []int16
	intraGap []int16
	charGap  []int16
	wordGap  []int16
}

// NewRenderer synthesizes the segment templates for the given timing and
// tone parameters. Both tones share the rise/fall lengths computed from the
// dit duration.
func NewRenderer(timing Timing, tone Tone) *Renderer {
	rise, fall := timing.RiseSamples(), timing.FallSamples()
	return &Renderer{
		timing:   timing,
		tone:     tone,
		dit:      renderTone(timing.DitSamples(), rise, fall, tone, timing.SampleRate),
		dah:      renderTone(timing.DahSamples(), rise, fall, tone, timing.SampleRate),
		intraGap: renderSilence(timing.IntraCharSamples()),
		charGap:  renderSilence(timing.InterCharSamples()),
		wordGap:  renderSilence(timing.WordGapSamples()),
	}
}

// Timing returns the timing parameters the templates were rendered with.
func (r *Renderer) Timing() Timing {
	return r.timing
}

// Render walks the input one byte at a time, in order, and returns the fully
// concatenated sample buffer. For every byte after the first an
// inter-character gap is appended; then each symbol of the byte's Morse
// string is appended, with an intra-character gap between symbols. A ' '
// symbol stands in for a word gap in the symbol position.
//
// The inter-character gap is appended even when the byte maps to no symbols
// at all, so unmapped bytes still widen the gap around themselves. That
// matches long-observed output exactly and is pinned by tests; see
// TestUnmappedByteKeepsCharGap.
func (r *Renderer) Render(input []byte) *Buffer {
	buf := &Buffer{}
	for i, b := range input {
		if i != 0 {
			buf.Append(r.charGap)
		}
		symbols := SymbolString(b)
		for j := 0; j < len(symbols); j++ {
			if j != 0 {
				buf.Append(r.intraGap)
			}
			switch symbols[j] {
			case '.':
				buf.Append(r.dit)
			case '-':
				buf.Append(r.dah)
			case ' ':
				buf.Append(r.wordGap)
			}
		}
	}
	return buf
}
