package timings

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/cwgen/cmd/common"
	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	WPM        int `short:"w" help:"Words per minute." default:"18"`
	Farnsworth int `short:"f" help:"Farnsworth spacing words per minute. Defaults to the sending speed." default:"0"`
	Rate       int `help:"Sample rate in Hz." default:"44100"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "timings",
		Short:       "Show the derived segment durations",
		Long:        "Print the per-segment durations (in samples and milliseconds) that a render would use for the given speeds and sample rate.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params, os.Stdout)
		},
	}.ToCobra()
}

type row struct {
	segment string
	units   int
	wpm     int
	samples int
}

func Run(params *Params, out io.Writer) {
	timing := cw.NewTiming(float64(params.Rate), params.WPM, params.Farnsworth)

	rows := []row{
		{"dit", 1, timing.WPM, timing.DitSamples()},
		{"dah", 3, timing.WPM, timing.DahSamples()},
		{"intra-character space", 1, timing.WPM, timing.IntraCharSamples()},
		{"inter-character space", 3, timing.FWPM, timing.InterCharSamples()},
		{"inter-word space", 5, timing.FWPM, timing.WordGapSamples()},
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(getTermWidth())

	t.AppendHeader(table.Row{"Segment", "Units", "WPM", "Samples", "Duration"})
	t.AppendRows(lo.Map(rows, func(r row, _ int) table.Row {
		ms := time.Duration(float64(r.samples) / timing.SampleRate * float64(time.Second))
		return table.Row{r.segment, r.units, r.wpm, r.samples, ms.Round(time.Millisecond)}
	}))
	t.Render()

	_, _ = fmt.Fprintf(out, "rise/fall: %d samples each\n", timing.RiseSamples())
}

func getTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
