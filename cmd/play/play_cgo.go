//go:build (linux && cgo) || windows || darwin

package play

import (
	"fmt"

	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var speakerInitialized = false

// playBuffer plays a fully rendered sample buffer and blocks until it ends.
func playBuffer(buf *cw.Buffer, sampleRate int) error {
	if !speakerInitialized {
		err := speaker.Init(beep.SampleRate(sampleRate), sampleRate/10)
		if err != nil {
			return fmt.Errorf("initializing speaker: %w", err)
		}
		speakerInitialized = true
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{samples: buf.Samples()}, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}

// bufferStreamer streams rendered int16 samples as the float frames beep
// expects, same signal on both channels.
type bufferStreamer struct {
	samples  []int16
	position int
}

func (s *bufferStreamer) Stream(out [][2]float64) (n int, ok bool) {
	for i := range out {
		if s.position >= len(s.samples) {
			return i, false
		}
		v := float64(s.samples[s.position]) / (1 << 15)
		out[i][0] = v
		out[i][1] = v
		s.position++
	}
	return len(out), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
