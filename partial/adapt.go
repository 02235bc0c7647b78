package partial

import (
	"fmt"

	"github.com/on-the-ground/partial_ive_go/shared/helper"
)

// ErrNoCallable is returned by the facade when it is handed a nil function.
var ErrNoCallable = fmt.Errorf("no callable to adapt")

// Func0 adapts fn into a Function0. fn is not called.
func Func0[R any](fn func() R) (Function0[R], error) {
	if fn == nil {
		return Function0[R]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function0[R]{body: raw0[R](fn)}, nil
}

// Func1 adapts fn into a Function1. fn is not called.
func Func1[R, T1 any](fn func(T1) R) (Function1[R, T1], error) {
	if fn == nil {
		return Function1[R, T1]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function1[R, T1]{body: raw1[R, T1](fn)}, nil
}

// Func2 adapts fn into a Function2. fn is not called.
func Func2[R, T1, T2 any](fn func(T1, T2) R) (Function2[R, T1, T2], error) {
	if fn == nil {
		return Function2[R, T1, T2]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function2[R, T1, T2]{body: raw2[R, T1, T2](fn)}, nil
}

// Func3 adapts fn into a Function3. fn is not called.
func Func3[R, T1, T2, T3 any](fn func(T1, T2, T3) R) (Function3[R, T1, T2, T3], error) {
	if fn == nil {
		return Function3[R, T1, T2, T3]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function3[R, T1, T2, T3]{body: raw3[R, T1, T2, T3](fn)}, nil
}

// Func4 adapts fn into a Function4. fn is not called.
func Func4[R, T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) R) (Function4[R, T1, T2, T3, T4], error) {
	if fn == nil {
		return Function4[R, T1, T2, T3, T4]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function4[R, T1, T2, T3, T4]{body: raw4[R, T1, T2, T3, T4](fn)}, nil
}

// Func5 adapts fn into a Function5. fn is not called.
func Func5[R, T1, T2, T3, T4, T5 any](fn func(T1, T2, T3, T4, T5) R) (Function5[R, T1, T2, T3, T4, T5], error) {
	if fn == nil {
		return Function5[R, T1, T2, T3, T4, T5]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return Function5[R, T1, T2, T3, T4, T5]{body: raw5[R, T1, T2, T3, T4, T5](fn)}, nil
}

// Variadic adapts fn into a VariadicFunction with nothing bound. fn is not called.
func Variadic[R, T any](fn func(...T) R) (VariadicFunction[R, T], error) {
	if fn == nil {
		return VariadicFunction[R, T]{}, fmt.Errorf("%w: %T", ErrNoCallable, fn)
	}
	return VariadicFunction[R, T]{fn: fn}, nil
}

// MustFunc0 is the panic-on-failure variant of Func0.
func MustFunc0[R any](fn func() R) Function0[R] {
	return helper.Must(Func0(fn))
}

// MustFunc1 is the panic-on-failure variant of Func1.
func MustFunc1[R, T1 any](fn func(T1) R) Function1[R, T1] {
	return helper.Must(Func1(fn))
}

// MustFunc2 is the panic-on-failure variant of Func2.
func MustFunc2[R, T1, T2 any](fn func(T1, T2) R) Function2[R, T1, T2] {
	return helper.Must(Func2(fn))
}

// MustFunc3 is the panic-on-failure variant of Func3.
func MustFunc3[R, T1, T2, T3 any](fn func(T1, T2, T3) R) Function3[R, T1, T2, T3] {
	return helper.Must(Func3(fn))
}

// MustFunc4 is the panic-on-failure variant of Func4.
func MustFunc4[R, T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) R) Function4[R, T1, T2, T3, T4] {
	return helper.Must(Func4(fn))
}

// MustFunc5 is the panic-on-failure variant of Func5.
func MustFunc5[R, T1, T2, T3, T4, T5 any](fn func(T1, T2, T3, T4, T5) R) Function5[R, T1, T2, T3, T4, T5] {
	return helper.Must(Func5(fn))
}

// MustVariadic is the panic-on-failure variant of Variadic.
func MustVariadic[R, T any](fn func(...T) R) VariadicFunction[R, T] {
	return helper.Must(Variadic(fn))
}
