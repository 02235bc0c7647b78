package partial

// bodyN is whatever sits behind a FunctionN: either the adapted raw callable
// or a bound wrapper holding the wider function and the value it fixed.
// Every implementation lists its open arguments in positional order.
type body0[R any] interface {
	call() R
}

type body1[R, T1 any] interface {
	call(T1) R
}

type body2[R, T1, T2 any] interface {
	call(T1, T2) R
}

type body3[R, T1, T2, T3 any] interface {
	call(T1, T2, T3) R
}

type body4[R, T1, T2, T3, T4 any] interface {
	call(T1, T2, T3, T4) R
}

type body5[R, T1, T2, T3, T4, T5 any] interface {
	call(T1, T2, T3, T4, T5) R
}

type raw0[R any] func() R

func (fn raw0[R]) call() R { return fn() }

type raw1[R, T1 any] func(T1) R

func (fn raw1[R, T1]) call(a1 T1) R { return fn(a1) }

type raw2[R, T1, T2 any] func(T1, T2) R

func (fn raw2[R, T1, T2]) call(a1 T1, a2 T2) R { return fn(a1, a2) }

type raw3[R, T1, T2, T3 any] func(T1, T2, T3) R

func (fn raw3[R, T1, T2, T3]) call(a1 T1, a2 T2, a3 T3) R { return fn(a1, a2, a3) }

type raw4[R, T1, T2, T3, T4 any] func(T1, T2, T3, T4) R

func (fn raw4[R, T1, T2, T3, T4]) call(a1 T1, a2 T2, a3 T3, a4 T4) R {
	return fn(a1, a2, a3, a4)
}

type raw5[R, T1, T2, T3, T4, T5 any] func(T1, T2, T3, T4, T5) R

func (fn raw5[R, T1, T2, T3, T4, T5]) call(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) R {
	return fn(a1, a2, a3, a4, a5)
}

// bound1 closes the single slot of a Function1; left and right coincide.
type bound1[R, T1 any] struct {
	fn  Function1[R, T1]
	arg T1
}

func (b bound1[R, T1]) call() R {
	return b.fn.Apply(b.arg)
}

// leftN holds the first argument of a FunctionN, rightN the last.

type left2[R, T1, T2 any] struct {
	fn  Function2[R, T1, T2]
	arg T1
}

func (b left2[R, T1, T2]) call(a2 T2) R {
	return b.fn.Apply(b.arg, a2)
}

type right2[R, T1, T2 any] struct {
	fn  Function2[R, T1, T2]
	arg T2
}

func (b right2[R, T1, T2]) call(a1 T1) R {
	return b.fn.Apply(a1, b.arg)
}

type left3[R, T1, T2, T3 any] struct {
	fn  Function3[R, T1, T2, T3]
	arg T1
}

func (b left3[R, T1, T2, T3]) call(a2 T2, a3 T3) R {
	return b.fn.Apply(b.arg, a2, a3)
}

type right3[R, T1, T2, T3 any] struct {
	fn  Function3[R, T1, T2, T3]
	arg T3
}

func (b right3[R, T1, T2, T3]) call(a1 T1, a2 T2) R {
	return b.fn.Apply(a1, a2, b.arg)
}

type left4[R, T1, T2, T3, T4 any] struct {
	fn  Function4[R, T1, T2, T3, T4]
	arg T1
}

func (b left4[R, T1, T2, T3, T4]) call(a2 T2, a3 T3, a4 T4) R {
	return b.fn.Apply(b.arg, a2, a3, a4)
}

type right4[R, T1, T2, T3, T4 any] struct {
	fn  Function4[R, T1, T2, T3, T4]
	arg T4
}

func (b right4[R, T1, T2, T3, T4]) call(a1 T1, a2 T2, a3 T3) R {
	return b.fn.Apply(a1, a2, a3, b.arg)
}

type left5[R, T1, T2, T3, T4, T5 any] struct {
	fn  Function5[R, T1, T2, T3, T4, T5]
	arg T1
}

func (b left5[R, T1, T2, T3, T4, T5]) call(a2 T2, a3 T3, a4 T4, a5 T5) R {
	return b.fn.Apply(b.arg, a2, a3, a4, a5)
}

type right5[R, T1, T2, T3, T4, T5 any] struct {
	fn  Function5[R, T1, T2, T3, T4, T5]
	arg T5
}

func (b right5[R, T1, T2, T3, T4, T5]) call(a1 T1, a2 T2, a3 T3, a4 T4) R {
	return b.fn.Apply(a1, a2, a3, a4, b.arg)
}
