package validator

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/is/pkg/fn"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string         `json:"field" yaml:"field"`
	Message           string         `json:"message" yaml:"message"`
	TranslationKey    string         `json:"translation_key,omitempty" yaml:"translation_key,omitempty"`
	TranslationValues map[string]any `json:"-" yaml:"-"`
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := fn.Map(ve, func(err ValidationError) string {
		return err.Field + ": " + err.Message
	})
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) detect any non-empty collection.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	_, found := fn.Find(ve, onField(field))
	return found
}

// Get returns the messages recorded for field, in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	return fn.Map(ve.GetErrors(field), func(err ValidationError) string { return err.Message })
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return fn.Filter(ve, func(err ValidationError, _ int) bool { return err.Field == field })
}

// Fields returns the distinct field names in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	return fn.Unique(fn.Map(ve, func(err ValidationError) string { return err.Field }))
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func onField(field string) func(ValidationError) bool {
	return func(err ValidationError) bool { return err.Field == field }
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule runs; failures are reported in rule order.
func Apply(rules ...Rule) error {
	failed := fn.Filter(rules, func(rule Rule, _ int) bool { return !rule.Check() })
	if len(failed) == 0 {
		return nil
	}
	return ValidationErrors(fn.Map(failed, func(rule Rule) ValidationError { return rule.Error }))
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	var validationErr ValidationErrors
	return err != nil && errors.As(err, &validationErr)
}

// newError builds the error half of a Rule. The field name is always part of
// the translation values.
func newError(field, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
