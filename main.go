package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/cwgen/cmd/encode"
	"github.com/gigurra/cwgen/cmd/play"
	"github.com/gigurra/cwgen/cmd/timings"
	"github.com/gigurra/cwgen/cmd/translate"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "cwgen",
		Short:   "Morse code audio generator",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			encode.Cmd(),
			play.Cmd(),
			translate.Cmd(),
			timings.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
