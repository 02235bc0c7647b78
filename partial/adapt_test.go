package partial_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/partial_ive_go/partial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt_NilCallableIsRejected(t *testing.T) {
	_, err := partial.Func0[string](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Func1[string, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Func2[string, int, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Func3[string, int, int, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Func4[string, int, int, int, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Func5[string, int, int, int, int, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)

	_, err = partial.Variadic[string, int](nil)
	assert.ErrorIs(t, err, partial.ErrNoCallable)
}

func TestAdapt_ErrorNamesCallableType(t *testing.T) {
	_, err := partial.Func2[string, int, bool](nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "func(int, bool) string")
}

func TestAdapt_MustVariantsPanic(t *testing.T) {
	assertNoCallablePanic := func(fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			err, ok := r.(error)
			require.True(t, ok, "expected error panic, got %v", r)
			assert.True(t, errors.Is(err, partial.ErrNoCallable))
		}()
		fn()
	}

	assertNoCallablePanic(func() { partial.MustFunc0[int](nil) })
	assertNoCallablePanic(func() { partial.MustFunc1[int, int](nil) })
	assertNoCallablePanic(func() { partial.MustFunc2[int, int, int](nil) })
	assertNoCallablePanic(func() { partial.MustFunc3[int, int, int, int](nil) })
	assertNoCallablePanic(func() { partial.MustFunc4[int, int, int, int, int](nil) })
	assertNoCallablePanic(func() { partial.MustFunc5[int, int, int, int, int, int](nil) })
	assertNoCallablePanic(func() { partial.MustVariadic[int, int](nil) })
}

func TestAdapt_DoesNotInvokeCallable(t *testing.T) {
	effects := 0
	effect := func() { effects++ }

	f0, err := partial.Func0(func() int { effect(); return 0 })
	require.NoError(t, err)
	f1, err := partial.Func1(func(int) int { effect(); return 1 })
	require.NoError(t, err)
	f2, err := partial.Func2(func(int, int) int { effect(); return 2 })
	require.NoError(t, err)
	f3, err := partial.Func3(func(int, int, int) int { effect(); return 3 })
	require.NoError(t, err)
	f4, err := partial.Func4(func(int, int, int, int) int { effect(); return 4 })
	require.NoError(t, err)
	f5, err := partial.Func5(func(int, int, int, int, int) int { effect(); return 5 })
	require.NoError(t, err)
	v, err := partial.Variadic(func(...int) int { effect(); return -1 })
	require.NoError(t, err)

	assert.Equal(t, 0, effects)

	assert.Equal(t, 0, f0.Apply())
	assert.Equal(t, 1, f1.Apply(0))
	assert.Equal(t, 2, f2.Apply(0, 0))
	assert.Equal(t, 3, f3.Apply(0, 0, 0))
	assert.Equal(t, 4, f4.Apply(0, 0, 0, 0))
	assert.Equal(t, 5, f5.Apply(0, 0, 0, 0, 0))
	assert.Equal(t, -1, v.Apply())
	assert.Equal(t, 7, effects)
}

type greeter func(string) string

func TestAdapt_AcceptsNamedFuncTypes(t *testing.T) {
	var hello greeter = func(name string) string { return "hello, " + name }

	f, err := partial.Func1(hello)
	require.NoError(t, err)

	assert.Equal(t, "hello, go", f.Apply("go"))
}
