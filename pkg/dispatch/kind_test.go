package dispatch_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/is/pkg/dispatch"
)

type label string

type point struct{ X, Y int }

func TestKindOf(t *testing.T) {
	t.Parallel()

	var nilSlice []int
	var nilPtr *point
	now := time.Now()

	testCases := []struct {
		name  string
		value any
		want  dispatch.Kind
	}{
		{"untyped nil", nil, dispatch.KindNil},
		{"nil slice", nilSlice, dispatch.KindNil},
		{"nil pointer", nilPtr, dispatch.KindNil},
		{"string", "abc", dispatch.KindText},
		{"named string", label("x"), dispatch.KindText},
		{"bool", true, dispatch.KindBoolean},
		{"int", 42, dispatch.KindNumber},
		{"uint8", uint8(7), dispatch.KindNumber},
		{"float", 3.14, dispatch.KindNumber},
		{"infinity", math.Inf(1), dispatch.KindNumber},
		{"func", func() {}, dispatch.KindCallable},
		{"time", now, dispatch.KindTime},
		{"time pointer", &now, dispatch.KindTime},
		{"regexp", regexp.MustCompile(`a`), dispatch.KindPattern},
		{"slice", []int{1}, dispatch.KindSequence},
		{"array", [2]string{"a", "b"}, dispatch.KindSequence},
		{"map", map[string]int{}, dispatch.KindObject},
		{"struct", point{}, dispatch.KindObject},
		{"struct pointer", &point{}, dispatch.KindObject},
		{"NaN", math.NaN(), dispatch.KindUnknown},
		{"channel", make(chan int), dispatch.KindUnknown},
		{"complex", complex(1, 2), dispatch.KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dispatch.KindOf(tc.value))
		})
	}
}

func TestKind_Matches(t *testing.T) {
	t.Parallel()

	t.Run("time is also an object", func(t *testing.T) {
		assert.True(t, dispatch.KindObject.Matches(time.Time{}))
	})

	t.Run("nil func is not callable", func(t *testing.T) {
		var fn func()
		assert.False(t, dispatch.KindCallable.Matches(fn))
	})

	t.Run("NaN is not a number", func(t *testing.T) {
		assert.False(t, dispatch.KindNumber.Matches(math.NaN()))
	})

	t.Run("unknown kinds match nothing", func(t *testing.T) {
		assert.False(t, dispatch.KindUnknown.Matches("abc"))
		assert.False(t, dispatch.Kind(200).Matches("abc"))
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", dispatch.KindText.String())
	assert.Equal(t, "callable", dispatch.KindCallable.String())
	assert.Equal(t, "kind(200)", dispatch.Kind(200).String())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range dispatch.Kinds() {
		parsed, err := dispatch.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := dispatch.ParseKind("unknown")
	require.ErrorIs(t, err, dispatch.ErrUnknownKind)

	_, err = dispatch.ParseKind("String")
	require.ErrorIs(t, err, dispatch.ErrUnknownKind)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := dispatch.Kinds()
	require.Len(t, kinds, 9)
	assert.Equal(t, dispatch.KindNil, kinds[0])
	assert.NotContains(t, kinds, dispatch.KindUnknown)
}
