package card_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/is/pkg/card"
)

// FuzzValid checks that validation is total over arbitrary strings and that
// separators never change the outcome.
func FuzzValid(f *testing.F) {
	f.Add("4539 1488 0343 6467")
	f.Add("4539 1488 0343 6468")
	f.Add("")
	f.Add("4")
	f.Add("41111111111111111111")
	f.Add("'; DROP TABLE cards;--")
	f.Add(string([]byte{0x00, 0xff, 0x34}))

	f.Fuzz(func(t *testing.T, input string) {
		valid := card.Valid(input)

		digits := card.Digits(input)
		if valid && (len(digits) < card.MinDigits || len(digits) > card.MaxDigits) {
			t.Errorf("accepted %d digits", len(digits))
		}

		var b strings.Builder
		for _, d := range digits {
			b.WriteByte(byte('0' + d))
			b.WriteByte(' ')
		}
		if card.Valid(b.String()) != valid {
			t.Errorf("separators changed result for %q", input)
		}

		for _, issuer := range card.Matches(input) {
			if !valid {
				t.Errorf("invalid input matched issuer %s", issuer)
			}
		}

		if masked := card.Mask(input); len(masked) != len(input) {
			t.Errorf("mask changed length: %d != %d", len(masked), len(input))
		}
	})
}
