package format

import "strings"

var (
	wordOnes = []string{"", "satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan", "sembilan"}
	wordTeens = []string{"sepuluh", "sebelas", "dua belas", "tiga belas", "empat belas", "lima belas",
		"enam belas", "tujuh belas", "delapan belas", "sembilan belas"}
	wordTens = []string{"", "", "dua puluh", "tiga puluh", "empat puluh", "lima puluh",
		"enam puluh", "tujuh puluh", "delapan puluh", "sembilan puluh"}
	wordScales = []string{"", "ribu", "juta", "miliar", "triliun"}
)

// NumberToWords converts a non-negative integer to its Indonesian word form,
// as printed on the invoice amount line. Magnitude groups are handled in
// chunks of three digits up to triliun. Zero yields "nol".
func NumberToWords(n int64) string {
	if n == 0 {
		return "nol"
	}

	var parts []string
	scale := 0
	for n > 0 {
		chunk := n % 1000
		if chunk != 0 {
			words := chunkToWords(int(chunk))
			if scale > 0 && scale < len(wordScales) {
				words += " " + wordScales[scale]
			}
			parts = append([]string{words}, parts...)
		}
		n /= 1000
		scale++
	}

	return strings.Join(parts, " ")
}

func chunkToWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return wordOnes[n]
	case n < 20:
		return wordTeens[n-10]
	case n < 100:
		tens := wordTens[n/10]
		if ones := n % 10; ones != 0 {
			return tens + " " + wordOnes[ones]
		}
		return tens
	}

	hundreds := "seratus"
	if n/100 > 1 {
		hundreds = wordOnes[n/100] + " ratus"
	}
	if rest := n % 100; rest != 0 {
		return hundreds + " " + chunkToWords(rest)
	}
	return hundreds
}
