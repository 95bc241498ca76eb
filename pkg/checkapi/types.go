package checkapi

import (
	"encoding/json"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/validator"
)

// PredicateRequest is the body of POST /v1/predicates/{name}. Value holds any
// JSON value, including null; numbers arrive as float64.
type PredicateRequest struct {
	Value json.RawMessage `json:"value"`

	value any
}

// Prepare validates the request and decodes Value.
func (r *PredicateRequest) Prepare() error {
	// A missing field leaves Value empty; an explicit null does not.
	if err := validator.Apply(validator.Required("value", string(r.Value))); err != nil {
		return err
	}
	return json.Unmarshal(r.Value, &r.value)
}

type PredicateResponse struct {
	Predicate string `json:"predicate"`
	Result    bool   `json:"result"`
}

type PredicatesResponse struct {
	Predicates []string `json:"predicates"`
}

// CardRequest is the body of POST /v1/cards.
type CardRequest struct {
	Number string `json:"number"`
}

func (r *CardRequest) Prepare() error {
	return validator.Apply(
		validator.Required("number", r.Number),
		validator.Max("number", len(r.Number), maxCardInput),
	)
}

// CardResponse reports validity and issuer classification independently:
// Issuers lists every table entry whose prefix matches a valid number, and
// Issuer is the first of them.
type CardResponse struct {
	Valid   bool          `json:"valid"`
	Issuer  card.Issuer   `json:"issuer,omitempty"`
	Issuers []card.Issuer `json:"issuers"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error       string                     `json:"error"`
	Description string                     `json:"error_description,omitempty"`
	Fields      validator.ValidationErrors `json:"fields,omitempty"`
}
