// Package inn normalizes raw table cells into taxpayer identification numbers.
package inn

import (
	"regexp"
	"strings"
	"unicode"
)

// NonePlaceholder is what an absent cell turns into before matching.
const NonePlaceholder = "None"

// A 10-12 digit run with word boundaries on both sides. Letters, numbers and '_' count as
// word characters in any script.
var innPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(\p{Nd}{10,12})(?:[^\p{L}\p{N}_]|$)`)

var cellCleaner = strings.NewReplacer("\n", "", " ", "")

// Normalize returns the first 10-12 digit token of the cell with newlines and spaces
// removed, or the cleaned text itself when there is no such token.
func Normalize(cell *string) string {
	text := NonePlaceholder
	if cell != nil {
		text = *cell
	}
	cleaned := cellCleaner.Replace(text)
	if m := innPattern.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}
	return cleaned
}

// digitType lists the characters with Unicode Numeric_Type=Digit: superscripts,
// subscripts, circled and parenthesized digits and a few historic scripts. Together with
// category Nd they form the set a digit check accepts.
var digitType = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// IsDigits reports whether s is non-empty and made only of digits: decimal digits of any
// script plus digit-type characters such as "²" or "①".
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.Is(digitType, r) {
			return false
		}
	}
	return true
}

var (
	weights10 = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	weights11 = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	weights12 = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
)

// Valid checks the control digits of a 10-digit (organisation) or 12-digit
// (individual) INN.
func Valid(inn string) bool {
	digits := make([]int, 0, len(inn))
	for _, r := range inn {
		if r < '0' || r > '9' {
			return false
		}
		digits = append(digits, int(r-'0'))
	}

	switch len(digits) {
	case 10:
		return controlDigit(digits, weights10) == digits[9]
	case 12:
		return controlDigit(digits, weights11) == digits[10] &&
			controlDigit(digits, weights12) == digits[11]
	default:
		return false
	}
}

func controlDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum % 11 % 10
}
