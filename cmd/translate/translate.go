package translate

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/cwgen/cmd/common"
	"github.com/gigurra/cwgen/pkg/cw"
	"github.com/spf13/cobra"
)

type Params struct {
	Text   []string `pos:"true" optional:"true" help:"Text to encode/decode. If none provided, reads from stdin."`
	Decode bool     `short:"d" help:"Decode dot/dash notation back to text." default:"false"`
}

// fromMorse maps a dot/dash code back to its (uppercase) character.
var fromMorse map[string]byte

func init() {
	fromMorse = make(map[string]byte)
	for b := 0; b < 256; b++ {
		code := cw.SymbolString(byte(b))
		if code == "" || code == " " {
			continue
		}
		if _, taken := fromMorse[code]; !taken {
			// Uppercase letters come first in byte order and win over
			// their lowercase duplicates.
			fromMorse[code] = byte(b)
		}
	}
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "translate",
		Short:       "Convert between text and dot/dash Morse notation",
		Long:        "Convert text to written Morse code or decode written Morse code back to text. Words are separated by / in Morse notation.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params)
		},
	}.ToCobra()
}

func Run(params *Params) {
	if len(params.Text) > 0 {
		text := strings.Join(params.Text, " ")
		if params.Decode {
			fmt.Println(decode(text))
		} else {
			fmt.Println(encode(text))
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if params.Decode {
				fmt.Println(decode(scanner.Text()))
			} else {
				fmt.Println(encode(scanner.Text()))
			}
		}
	}
}

func encode(text string) string {
	var result []string
	for i := 0; i < len(text); i++ {
		code := cw.SymbolString(text[i])
		switch code {
		case "":
			// unmapped bytes are dropped
		case " ":
			result = append(result, "/")
		default:
			result = append(result, code)
		}
	}
	return strings.Join(result, " ")
}

func decode(morse string) string {
	var result strings.Builder
	words := strings.Split(morse, " / ")
	for i, word := range words {
		if i > 0 {
			result.WriteByte(' ')
		}
		for _, code := range strings.Fields(word) {
			if b, ok := fromMorse[code]; ok {
				result.WriteByte(b)
			}
		}
	}
	return result.String()
}
