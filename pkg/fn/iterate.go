package fn

// Each calls f for every element of seq in index order.
func Each[T any](seq []T, f func(item T, index int)) {
	for i, item := range seq {
		f(item, i)
	}
}

// EachReversed calls f for every element of seq from the last to the first.
// iteration counts calls starting at 1, so the last element has iteration 1.
func EachReversed[T any](seq []T, f func(item T, index, iteration int)) {
	iteration := 1
	for i := len(seq) - 1; i >= 0; i-- {
		f(seq[i], i, iteration)
		iteration++
	}
}

// Map returns a new slice holding f applied to each element of seq.
func Map[T, U any](seq []T, f func(T) U) []U {
	out := make([]U, len(seq))
	for i, item := range seq {
		out[i] = f(item)
	}
	return out
}

// Filter returns the elements of seq for which pred holds, in order.
func Filter[T any](seq []T, pred func(item T, index int) bool) []T {
	var out []T
	for i, item := range seq {
		if pred(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the first element of seq satisfying pred.
func Find[T any](seq []T, pred func(T) bool) (T, bool) {
	for _, item := range seq {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Fold reduces seq from left to right, starting from init.
func Fold[T, A any](seq []T, init A, f func(acc A, item T) A) A {
	acc := init
	for _, item := range seq {
		acc = f(acc, item)
	}
	return acc
}

// FoldRight reduces seq from right to left, starting from init.
// iteration is 1 for the last element, 2 for the one before it, and so on.
func FoldRight[T, A any](seq []T, init A, f func(acc A, item T, iteration int) A) A {
	acc := init
	for i, iteration := len(seq)-1, 1; i >= 0; i, iteration = i-1, iteration+1 {
		acc = f(acc, seq[i], iteration)
	}
	return acc
}

// Unique returns seq without repeated elements, keeping first occurrences.
func Unique[T comparable](seq []T) []T {
	seen := make(map[T]struct{}, len(seq))
	return Filter(seq, func(item T, _ int) bool {
		if _, ok := seen[item]; ok {
			return false
		}
		seen[item] = struct{}{}
		return true
	})
}
