package dispatch

import "slices"

// Every reports whether pred holds for each element of seq, evaluated in index
// order. It stops at the first failing element. An empty seq yields true.
//
// pred receives a copy of seq as its third argument; mutating seq from inside
// pred is not visible through it.
func Every[T any](pred func(item T, index int, snapshot []T) bool, seq []T) (bool, error) {
	if pred == nil {
		return false, NewArgumentError("pred", pred, "expected a predicate")
	}
	orig := slices.Clone(seq)
	for i := 0; i < len(seq); i++ {
		if !pred(seq[i], i, orig) {
			return false, nil
		}
	}
	return true, nil
}

// EveryValue is Every for values whose static type is unknown. seq must be a
// slice or array; anything else is reported as an *ArgumentError wrapping the
// kind mismatch.
func EveryValue(pred func(item any, index int, snapshot []any) bool, seq any) (bool, error) {
	if pred == nil {
		return false, NewArgumentError("pred", pred, "expected a predicate")
	}
	res, err := IfSequence(seq, func(items []any) result {
		ok, err := Every(pred, items)
		return result{ok, err}
	})
	if err != nil {
		return false, AsArgumentError("seq", seq, err)
	}
	return res.ok, res.err
}

type result struct {
	ok  bool
	err error
}
