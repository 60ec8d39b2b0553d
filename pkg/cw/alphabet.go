package cw

// alphabet maps every possible input byte to its Morse symbol string, built
// from '.', '-' and ' ' (a ' ' symbol stands for a word gap). Bytes without a
// mapping produce no audio at all. Bell and newline behave like the space
// character so that line-structured input reads as separate words.
var alphabet = [256]string{
	7:  " ", // bell
	10: " ", // newline
	32: " ",

	',': "--..--",
	'.': ".-.-.-",
	'=': "-...-",
	'?': "..--..",

	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",

	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",

	'a': ".-",
	'b': "-...",
	'c': "-.-.",
	'd': "-..",
	'e': ".",
	'f': "..-.",
	'g': "--.",
	'h': "....",
	'i': "..",
	'j': ".---",
	'k': "-.-",
	'l': ".-..",
	'm': "--",
	'n': "-.",
	'o': "---",
	'p': ".--.",
	'q': "--.-",
	'r': ".-.",
	's': "...",
	't': "-",
	'u': "..-",
	'v': "...-",
	'w': ".--",
	'x': "-..-",
	'y': "-.--",
	'z': "--..",
}

// SymbolString returns the Morse symbols for a raw input byte, or the empty
// string when the byte has no Morse representation.
func SymbolString(b byte) string {
	return alphabet[b]
}
