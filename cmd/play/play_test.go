//go:build (linux && cgo) || windows || darwin

package play

import (
	"testing"

	"github.com/gigurra/cwgen/pkg/cw"
)

func TestBufferStreamer(t *testing.T) {
	timing := cw.NewTiming(cw.DefaultSampleRate, 18, 18)
	buf := cw.NewRenderer(timing, cw.NewTone(cw.DefaultFrequency, cw.DefaultVolume)).Render([]byte("E"))

	s := &bufferStreamer{samples: buf.Samples()}

	var got int
	out := make([][2]float64, 512)
	for {
		n, ok := s.Stream(out)
		for i := 0; i < n; i++ {
			if out[i][0] != out[i][1] {
				t.Fatal("left and right channels differ")
			}
			if out[i][0] < -1 || out[i][0] > 1 {
				t.Fatalf("sample %d out of range: %v", got+i, out[i][0])
			}
		}
		got += n
		if !ok {
			break
		}
	}

	if got != buf.Len() {
		t.Errorf("streamed %d samples, want %d", got, buf.Len())
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
