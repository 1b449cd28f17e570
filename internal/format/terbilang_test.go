package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "zero", input: 0, expected: "nol"},
		{name: "single digit", input: 7, expected: "tujuh"},
		{name: "ten", input: 10, expected: "sepuluh"},
		{name: "eleven", input: 11, expected: "sebelas"},
		{name: "teens", input: 15, expected: "lima belas"},
		{name: "compound tens", input: 21, expected: "dua puluh satu"},
		{name: "round tens", input: 90, expected: "sembilan puluh"},
		{name: "one hundred", input: 100, expected: "seratus"},
		{name: "hundred with remainder", input: 245, expected: "dua ratus empat puluh lima"},
		{name: "thousand", input: 1000, expected: "satu ribu"},
		{name: "mixed thousands", input: 12345, expected: "dua belas ribu tiga ratus empat puluh lima"},
		{name: "two hundred thousand", input: 200000, expected: "dua ratus ribu"},
		{name: "millions", input: 2500000, expected: "dua juta lima ratus ribu"},
		{name: "billions", input: 1000000000, expected: "satu miliar"},
		{name: "trillions", input: 3000000000000, expected: "tiga triliun"},
		{name: "skips empty magnitude groups", input: 1000001, expected: "satu juta satu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberToWords(tt.input))
		})
	}
}
