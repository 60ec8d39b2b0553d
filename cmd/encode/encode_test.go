package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/mewkiz/flac"
)

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEncodesFLAC(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.flac")
	params := &Params{
		Input: writeInput(t, "SOS"), Output: out,
		WPM: 18, Frequency: 600, Volume: 8192, Rate: 44100,
		Channels: 1, Compression: 8, Verify: true, Quiet: true,
	}
	if err := Run(params); err != nil {
		t.Fatalf("Run: %v", err)
	}

	stream, err := flac.ParseFile(out)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	defer stream.Close()

	timing := cw.NewTiming(44100, 18, 18)
	s := 3*timing.DitSamples() + 2*timing.IntraCharSamples()
	o := 3*timing.DahSamples() + 2*timing.IntraCharSamples()
	want := uint64(2*s + o + 2*timing.InterCharSamples())
	if stream.Info.NSamples != want {
		t.Errorf("NSamples = %d, want %d", stream.Info.NSamples, want)
	}
}

func TestRunEncodesWAV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.wav")
	params := &Params{
		Input: writeInput(t, "73 es gl"), Output: out,
		WPM: 25, Farnsworth: 10, Frequency: 700, Volume: 8192, Rate: 22050,
		Channels: 2, Compression: 8, Verify: true, Quiet: true,
	}
	if err := Run(params); err != nil {
		t.Fatalf("Run: %v", err)
	}

	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRunMissingInput(t *testing.T) {
	params := &Params{
		Input:  filepath.Join(t.TempDir(), "missing.txt"),
		Output: filepath.Join(t.TempDir(), "out.flac"),
		WPM:    18, Verify: true, Quiet: true,
	}
	if err := Run(params); err == nil {
		t.Error("expected error for unreadable input")
	}
	if _, err := os.Stat(params.Output); !os.IsNotExist(err) {
		t.Error("no output file may be produced when input is unreadable")
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	params := &Params{
		Input:  writeInput(t, "HI"),
		Output: filepath.Join(t.TempDir(), "out.mp3"),
		WPM:    18, Quiet: true,
	}
	if err := Run(params); err == nil {
		t.Error("expected error for unsupported output format")
	}
}
