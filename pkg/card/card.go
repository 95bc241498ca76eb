package card

import (
	"strings"

	"github.com/dmitrymomot/is/pkg/dispatch"
	"github.com/dmitrymomot/is/pkg/fn"
)

// Bounds on the number of digits a card number may carry. The shortest known
// issuer (Maestro) uses 12 digits, the longest 19.
const (
	MinDigits = 12
	MaxDigits = 19
)

// Valid reports whether candidate is a string that plausibly denotes a payment
// card number: between MinDigits and MaxDigits decimal digits once every other
// character is dropped, and a correct Luhn checksum.
//
// Valid is total: any non-string candidate yields false.
func Valid(candidate any) bool {
	ok, err := dispatch.IfText(candidate, validNumber)
	return err == nil && ok
}

func validNumber(s string) bool {
	digits := Digits(s)
	if len(digits) < MinDigits || len(digits) > MaxDigits {
		return false
	}
	ok, err := ValidChecksum(digits)
	return err == nil && ok
}

// Digits returns the decimal digits of s in order, dropping every other
// character. Only ASCII 0-9 count as digits.
func Digits(s string) []int {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}

// Checksum returns the Luhn total of digits. The last digit is the check
// digit and is added unchanged; the remaining digits are walked from right to
// left and every odd step doubles its digit, subtracting 9 when the result
// exceeds 9.
//
// An empty slice or an element outside 0-9 is an *dispatch.ArgumentError.
func Checksum(digits []int) (int, error) {
	if len(digits) == 0 {
		return 0, dispatch.NewArgumentError("digits", digits, "expected at least one digit")
	}
	ok, err := dispatch.Every(func(d, _ int, _ []int) bool { return d >= 0 && d <= 9 }, digits)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, dispatch.NewArgumentError("digits", digits, "expected decimal digits only")
	}

	last := len(digits) - 1
	return fn.FoldRight(digits[:last], digits[last], luhnStep), nil
}

func luhnStep(total, digit, iteration int) int {
	if iteration%2 == 0 {
		return total + digit
	}
	doubled := digit * 2
	if doubled > 9 {
		doubled -= 9
	}
	return total + doubled
}

// ValidChecksum reports whether the Luhn total of digits is a multiple of 10.
func ValidChecksum(digits []int) (bool, error) {
	total, err := Checksum(digits)
	if err != nil {
		return false, err
	}
	return total%10 == 0, nil
}

// Mask hides all but the last four digits of s, keeping separators, so card
// numbers can be logged. Strings with four digits or fewer are fully masked.
func Mask(s string) string {
	total := len(Digits(s))
	hidden := total - 4
	if total <= 4 {
		hidden = total
	}

	var b strings.Builder
	b.Grow(len(s))
	seen := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			b.WriteByte(c)
			continue
		}
		if seen < hidden {
			b.WriteByte('*')
		} else {
			b.WriteByte(c)
		}
		seen++
	}
	return b.String()
}
