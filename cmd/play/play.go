package play

import (
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/cwgen/cmd/common"
	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/spf13/cobra"
)

type Params struct {
	Text []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads from stdin."`

	WPM        int     `short:"w" help:"Words per minute." default:"18"`
	Farnsworth int     `short:"f" help:"Farnsworth spacing words per minute. Defaults to the sending speed." default:"0"`
	Frequency  float64 `short:"t" help:"Frequency of the generated tone in Hertz." default:"600"`
	Volume     int     `help:"Peak tone amplitude, out of 32767." default:"8192"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play text as Morse code through the speakers",
		Long:        "Render text as Morse code audio and play it back (requires CGO on Linux). The whole message is rendered before playback starts.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "cwgen play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	text, err := common.TextFromArgsOrStdin(params.Text)
	if err != nil {
		return err
	}

	timing := cw.NewTiming(cw.DefaultSampleRate, params.WPM, params.Farnsworth)
	tone := cw.NewTone(params.Frequency, params.Volume)
	buf := cw.NewRenderer(timing, tone).Render(text)
	if buf.Len() == 0 {
		return nil
	}

	return playBuffer(buf, int(timing.SampleRate))
}
