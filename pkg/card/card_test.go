package card_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/dispatch"
)

func TestValid(t *testing.T) {
	t.Parallel()

	t.Run("valid card numbers", func(t *testing.T) {
		validNumbers := []string{
			"4539 1488 0343 6467",
			"4539-1488-0343-6467",
			"4539148803436467",
			"4111111111111111",
			"5555555555554444",
			"378282246310005",
			"6011111111111117",
			"30569309025904",
			"3530111333300000",
			"6759649826438453",
			"2223003122003222",
			"411111111117",        // 12 digits
			"4111111111111111110", // 19 digits
			"000000000000",
		}

		for _, number := range validNumbers {
			assert.True(t, card.Valid(number), "card number should be valid: %s", number)
		}
	})

	t.Run("checksum failures", func(t *testing.T) {
		invalidNumbers := []string{
			"4539 1488 0343 6468",
			"4111111111111112",
			"1234567812345678",
			"6400000000000000",
		}

		for _, number := range invalidNumbers {
			assert.False(t, card.Valid(number), "card number should be rejected: %s", number)
		}
	})

	t.Run("digit count out of range", func(t *testing.T) {
		testCases := []string{
			"",
			"4",
			"41111111111",          // 11 digits
			"41111111111111111111", // 20 digits
			"4111 1111 111",
			"abcd-efgh-ijkl-mnop",
		}

		for _, number := range testCases {
			assert.False(t, card.Valid(number), "card number should be rejected: %q", number)
		}
	})

	t.Run("non-string candidates are false, never a panic", func(t *testing.T) {
		candidates := []any{
			nil,
			4111111111111111,
			4111111111111111.0,
			[]byte("4111111111111111"),
			[]string{"4111111111111111"},
			map[string]string{"number": "4111111111111111"},
			true,
			func() string { return "4111111111111111" },
		}

		for _, candidate := range candidates {
			assert.NotPanics(t, func() {
				assert.False(t, card.Valid(candidate), "candidate should be rejected: %#v", candidate)
			})
		}
	})

	t.Run("separators never change the result", func(t *testing.T) {
		numbers := []string{"4539148803436467", "4539148803436468", "378282246310005", "41111111111"}
		separators := []func(string) string{
			func(s string) string { return s },
			func(s string) string { return strings.Join(strings.Split(s, ""), " ") },
			func(s string) string { return strings.Join(strings.Split(s, ""), "-") },
			func(s string) string { return " " + s + " " },
		}

		for _, number := range numbers {
			want := card.Valid(number)
			for _, sep := range separators {
				assert.Equal(t, want, card.Valid(sep(number)), "formatted %q", sep(number))
			}
		}
	})

	t.Run("named string types are accepted", func(t *testing.T) {
		type pan string
		assert.True(t, card.Valid(pan("4111111111111111")))
	})

	t.Run("non-ASCII digits are dropped", func(t *testing.T) {
		// Full-width digits are not decimal digits for this check.
		assert.False(t, card.Valid("４１１１１１１１１１１１１１１１"))
		assert.True(t, card.Valid("４4111111111111111"))
	})
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4, 5, 3, 9}, card.Digits("4-5 3x9"))
	assert.Empty(t, card.Digits("no digits"))
	assert.Empty(t, card.Digits(""))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	t.Run("luhn total", func(t *testing.T) {
		// 7992739871 with check digit 3 is the textbook example: total 70.
		total, err := card.Checksum(card.Digits("79927398713"))
		require.NoError(t, err)
		assert.Equal(t, 70, total)
	})

	t.Run("single digit is its own check digit", func(t *testing.T) {
		total, err := card.Checksum([]int{7})
		require.NoError(t, err)
		assert.Equal(t, 7, total)
	})

	t.Run("doubling subtracts nine above nine", func(t *testing.T) {
		// 5 is doubled to 10, minus 9 is 1; plus check digit 0.
		total, err := card.Checksum([]int{5, 0})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		// 4 is doubled to 8, 9 taken as is; plus check digit 2.
		total, err = card.Checksum([]int{9, 4, 2})
		require.NoError(t, err)
		assert.Equal(t, 19, total)
	})

	t.Run("programming errors", func(t *testing.T) {
		_, err := card.Checksum(nil)
		require.ErrorIs(t, err, dispatch.ErrInvalidArgument)

		_, err = card.Checksum([]int{1, 2, 10})
		require.ErrorIs(t, err, dispatch.ErrInvalidArgument)

		_, err = card.ValidChecksum([]int{-1})
		require.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	})

	t.Run("valid checksum", func(t *testing.T) {
		ok, err := card.ValidChecksum(card.Digits("4111111111111111"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = card.ValidChecksum(card.Digits("4111111111111112"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMask(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{"4111111111111111", "************1111"},
		{"4111 1111 1111 1111", "**** **** **** 1111"},
		{"3782-822463-10005", "****-******-*0005"},
		{"1234", "****"},
		{"12", "**"},
		{"", ""},
		{"n/a", "n/a"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, card.Mask(tc.in), "mask %q", tc.in)
	}
}
