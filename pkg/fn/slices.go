package fn

// Push returns a new slice with items appended to seq.
func Push[T any](seq []T, items ...T) []T {
	out := make([]T, 0, len(seq)+len(items))
	out = append(out, seq...)
	return append(out, items...)
}

// Unshift returns a new slice with items placed before seq.
func Unshift[T any](seq []T, items ...T) []T {
	out := make([]T, 0, len(seq)+len(items))
	out = append(out, items...)
	return append(out, seq...)
}

// Shift returns a copy of seq without its first element.
func Shift[T any](seq []T) []T {
	if len(seq) == 0 {
		return []T{}
	}
	return Push(seq[1:])
}

// Pop returns a copy of seq without its last element.
func Pop[T any](seq []T) []T {
	if len(seq) == 0 {
		return []T{}
	}
	return Push(seq[:len(seq)-1])
}
