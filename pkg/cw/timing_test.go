package cw

import "testing"

func TestDahIsThreeDits(t *testing.T) {
	for wpm := 1; wpm <= 100; wpm++ {
		tm := NewTiming(DefaultSampleRate, wpm, wpm)
		if got, want := tm.DahSamples(), 3*tm.DitSamples(); got != want {
			t.Errorf("wpm=%d: DahSamples() = %d, want %d", wpm, got, want)
		}
		if got, want := tm.IntraCharSamples(), tm.DitSamples(); got != want {
			t.Errorf("wpm=%d: IntraCharSamples() = %d, want %d", wpm, got, want)
		}
	}
}

func TestWordGapIsFiveThirdsOfCharGap(t *testing.T) {
	for fwpm := 1; fwpm <= 100; fwpm++ {
		tm := NewTiming(DefaultSampleRate, DefaultWPM, fwpm)
		// 5 units vs 3 units at the same fwpm, truncated from the same unit.
		if got, want := 3*tm.WordGapSamples(), 5*tm.InterCharSamples(); got != want {
			t.Errorf("fwpm=%d: 3*WordGapSamples() = %d, want %d", fwpm, got, want)
		}
	}
}

func TestFarnsworthSlowsOnlyTheGaps(t *testing.T) {
	fast := NewTiming(DefaultSampleRate, 18, 18)
	spaced := NewTiming(DefaultSampleRate, 18, 5)

	if fast.DitSamples() != spaced.DitSamples() {
		t.Errorf("dit changed with fwpm: %d vs %d", fast.DitSamples(), spaced.DitSamples())
	}
	if fast.DahSamples() != spaced.DahSamples() {
		t.Errorf("dah changed with fwpm: %d vs %d", fast.DahSamples(), spaced.DahSamples())
	}
	if spaced.InterCharSamples() <= fast.InterCharSamples() {
		t.Errorf("slower fwpm did not widen char gap: %d vs %d",
			spaced.InterCharSamples(), fast.InterCharSamples())
	}
}

func TestNewTimingFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name     string
		wpm      int
		fwpm     int
		wantWPM  int
		wantFWPM int
	}{
		{"both valid", 25, 10, 25, 10},
		{"wpm too low", 0, 10, DefaultWPM, 10},
		{"wpm too high", 101, 10, DefaultWPM, 10},
		{"wpm negative", -3, 10, DefaultWPM, 10},
		{"fwpm unset follows wpm", 25, 0, 25, 25},
		{"fwpm too high follows wpm", 25, 200, 25, 25},
		{"both invalid", 0, 0, DefaultWPM, DefaultWPM},
	}

	for _, tc := range tests {
		tm := NewTiming(DefaultSampleRate, tc.wpm, tc.fwpm)
		if tm.WPM != tc.wantWPM || tm.FWPM != tc.wantFWPM {
			t.Errorf("%s: NewTiming(_, %d, %d) = wpm %d fwpm %d, want wpm %d fwpm %d",
				tc.name, tc.wpm, tc.fwpm, tm.WPM, tm.FWPM, tc.wantWPM, tc.wantFWPM)
		}
	}
}

func TestNewTimingDefaultsSampleRate(t *testing.T) {
	tm := NewTiming(0, 18, 18)
	if tm.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %v, want %v", tm.SampleRate, DefaultSampleRate)
	}
}

func TestRiseFallIsTenthOfDit(t *testing.T) {
	tm := NewTiming(DefaultSampleRate, 18, 18)
	if got, want := tm.RiseSamples(), tm.DitSamples()/10; got != want {
		t.Errorf("RiseSamples() = %d, want %d", got, want)
	}
	if tm.RiseSamples() != tm.FallSamples() {
		t.Errorf("rise %d != fall %d", tm.RiseSamples(), tm.FallSamples())
	}
}
