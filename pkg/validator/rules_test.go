package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/dispatch"
	"github.com/dmitrymomot/is/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	rule := validator.Required("number", "4111")
	assert.True(t, rule.Check())
	assert.Equal(t, "number", rule.Error.Field)
	assert.Equal(t, "field is required", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	assert.Equal(t, map[string]any{"field": "number"}, rule.Error.TranslationValues)

	assert.True(t, validator.Required("n", 0).Check())
	assert.False(t, validator.Required("n", "").Check())
	assert.False(t, validator.Required("n", " \t ").Check())
	assert.False(t, validator.Required("n", nil).Check())
	assert.False(t, validator.Required("n", math.NaN()).Check())
}

func TestKind(t *testing.T) {
	t.Parallel()

	rule := validator.Kind("tags", []string{"a"}, dispatch.KindSequence)
	assert.True(t, rule.Check())
	assert.Equal(t, "must be a sequence", rule.Error.Message)
	assert.Equal(t, "validation.kind", rule.Error.TranslationKey)
	assert.Equal(t, "sequence", rule.Error.TranslationValues["kind"])

	assert.False(t, validator.Kind("tags", "a", dispatch.KindSequence).Check())
	assert.False(t, validator.Kind("tags", "a", dispatch.KindUnknown).Check())
}

func TestPredicate(t *testing.T) {
	t.Parallel()

	t.Run("registered predicate", func(t *testing.T) {
		rule := validator.Predicate("color", "#fff", "hexColor")
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.predicate", rule.Error.TranslationKey)
		assert.Equal(t, "hexColor", rule.Error.TranslationValues["predicate"])

		assert.False(t, validator.Predicate("color", "red", "hexColor").Check())
	})

	t.Run("unknown predicate panics at construction", func(t *testing.T) {
		assert.PanicsWithError(t, `validator: unknown predicate: "nope"`, func() {
			validator.Predicate("x", 1, "nope")
		})
	})
}

func TestCardRules(t *testing.T) {
	t.Parallel()

	t.Run("card number", func(t *testing.T) {
		rule := validator.CardNumber("number", "4539 1488 0343 6467")
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.card_number", rule.Error.TranslationKey)

		assert.False(t, validator.CardNumber("number", "4539 1488 0343 6468").Check())
		assert.False(t, validator.CardNumber("number", "").Check())
	})

	t.Run("card issuer", func(t *testing.T) {
		rule := validator.CardIssuer("number", "5555555555554444", card.Visa, card.MasterCard)
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.card_issuer", rule.Error.TranslationKey)
		assert.Equal(t, "must be a Visa or MasterCard card", rule.Error.Message)
		assert.Equal(t, []string{"Visa", "MasterCard"}, rule.Error.TranslationValues["issuers"])

		assert.False(t, validator.CardIssuer("number", "378282246310005", card.Visa, card.MasterCard).Check())
		assert.False(t, validator.CardIssuer("number", "4111111111111111").Check(), "no issuers never passes")
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"min passes", validator.Min("age", 18, 18), true},
		{"min fails", validator.Min("age", 17, 18), false},
		{"max passes", validator.Max("qty", 2.5, 3), true},
		{"max fails", validator.Max("qty", uint8(4), 3), false},
		{"range inclusive lower", validator.InRange("n", 1, 1, 5), true},
		{"range inclusive upper", validator.InRange("n", 5, 1, 5), true},
		{"range outside", validator.InRange("n", 6, 1, 5), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.rule.Check())
		})
	}

	rule := validator.InRange("n", 6, 1, 5)
	assert.Equal(t, "must be between 1 and 5", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "n", "min": 1, "max": 5}, rule.Error.TranslationValues)
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Email("email", "user@example.com").Check())
	assert.False(t, validator.Email("email", "user@localhost").Check())

	assert.True(t, validator.URL("site", "example.com").Check())
	assert.False(t, validator.URL("site", "ftp://example.com").Check())

	assert.True(t, validator.UUID("id", "550e8400-e29b-41d4-a716-446655440000").Check())
	assert.False(t, validator.UUID("id", "550e8400e29b41d4a716446655440000").Check())

	assert.True(t, validator.HexColor("color", "#a1b2c3").Check())
	assert.False(t, validator.HexColor("color", "#a1b2c").Check())
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	rule := validator.OneOf("format", "json", "text", "json", "yaml")
	assert.True(t, rule.Check())
	assert.Equal(t, "must be one of: [text json yaml]", rule.Error.Message)
	assert.Equal(t, "validation.one_of", rule.Error.TranslationKey)

	assert.False(t, validator.OneOf("format", "xml", "text", "json").Check())
	assert.False(t, validator.OneOf("format", "json").Check())
}

func TestApplyMixedRules(t *testing.T) {
	t.Parallel()

	number := "4111 1111 1111 1112"
	err := validator.Apply(
		validator.Required("number", number),
		validator.CardNumber("number", number),
		validator.CardIssuer("number", number, card.Visa),
		validator.Email("email", "user@example.com"),
	)
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"number"}, errs.Fields())
	assert.Equal(t, []string{"must be a valid card number", "must be a Visa card"}, errs.Get("number"))
}
