package encode

import (
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/cwgen/cmd/common"
	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/gigurra/cwgen/pkg/cwenc"
	"github.com/spf13/cobra"
)

type Params struct {
	Input  string `pos:"true" help:"Text file to convert. Use - to read from standard input."`
	Output string `pos:"true" help:"Audio file to write. Format chosen by extension (.flac or .wav)."`

	WPM        int     `short:"w" help:"Words per minute." default:"18"`
	Farnsworth int     `short:"f" help:"Farnsworth spacing words per minute. Defaults to the sending speed." default:"0"`
	Frequency  float64 `short:"t" help:"Frequency of the generated tone in Hertz." default:"600"`
	Volume     int     `help:"Peak tone amplitude, out of 32767." default:"8192"`
	Rate       int     `help:"Output sample rate in Hz." default:"44100"`
	Channels   int     `help:"Number of output channels." default:"1"`

	Compression int  `help:"Compression level for the encoder (0-8, FLAC only)." default:"8"`
	Verify      bool `help:"Decode the written file again and compare it with the rendered samples." default:"true"`
	Quiet       bool `short:"q" help:"Suppress the encoding report on stderr." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode",
		Short:       "Render text as a Morse code audio file",
		Long:        "Convert a text file into a lossless audio file of International Morse code, timed by words-per-minute with optional Farnsworth spacing.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "cwgen encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	text, err := common.ReadInput(params.Input)
	if err != nil {
		return err
	}

	timing := cw.NewTiming(float64(params.Rate), params.WPM, params.Farnsworth)
	tone := cw.NewTone(params.Frequency, params.Volume)
	buf := cw.NewRenderer(timing, tone).Render(text)

	enc, err := cwenc.ForPath(params.Output)
	if err != nil {
		return err
	}

	err = enc.Encode(params.Output, buf.Samples(), cwenc.Params{
		SampleRate:       int(timing.SampleRate),
		Channels:         params.Channels,
		BitsPerSample:    cwenc.DefaultBitsPerSample,
		CompressionLevel: params.Compression,
		Verify:           params.Verify,
	})

	if !params.Quiet {
		status := "succeeded"
		if err != nil {
			status = "FAILED"
		}
		_, _ = fmt.Fprintf(os.Stderr, "encoding: %s (%d samples, %s)\n",
			status, buf.Len(), buf.Duration(timing.SampleRate).Round(10*time.Millisecond))
	}
	return err
}
