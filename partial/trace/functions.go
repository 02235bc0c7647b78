package trace

import "github.com/on-the-ground/partial_ive_go/partial"

// Func0 returns fn with every Apply logged under name.
func Func0[R any](t *Tracer, name string, fn partial.Function0[R]) partial.Function0[R] {
	return partial.MustFunc0(func() R {
		c := t.begin(name)
		defer c.end()
		res := fn.Apply()
		c.returned = true
		return res
	})
}

// Func1 returns fn with every Apply logged under name.
func Func1[R, T1 any](t *Tracer, name string, fn partial.Function1[R, T1]) partial.Function1[R, T1] {
	return partial.MustFunc1(func(a1 T1) R {
		c := t.begin(name, a1)
		defer c.end()
		res := fn.Apply(a1)
		c.returned = true
		return res
	})
}

// Func2 returns fn with every Apply logged under name.
func Func2[R, T1, T2 any](t *Tracer, name string, fn partial.Function2[R, T1, T2]) partial.Function2[R, T1, T2] {
	return partial.MustFunc2(func(a1 T1, a2 T2) R {
		c := t.begin(name, a1, a2)
		defer c.end()
		res := fn.Apply(a1, a2)
		c.returned = true
		return res
	})
}

// Func3 returns fn with every Apply logged under name.
func Func3[R, T1, T2, T3 any](t *Tracer, name string, fn partial.Function3[R, T1, T2, T3]) partial.Function3[R, T1, T2, T3] {
	return partial.MustFunc3(func(a1 T1, a2 T2, a3 T3) R {
		c := t.begin(name, a1, a2, a3)
		defer c.end()
		res := fn.Apply(a1, a2, a3)
		c.returned = true
		return res
	})
}

// Func4 returns fn with every Apply logged under name.
func Func4[R, T1, T2, T3, T4 any](
	t *Tracer,
	name string,
	fn partial.Function4[R, T1, T2, T3, T4],
) partial.Function4[R, T1, T2, T3, T4] {
	return partial.MustFunc4(func(a1 T1, a2 T2, a3 T3, a4 T4) R {
		c := t.begin(name, a1, a2, a3, a4)
		defer c.end()
		res := fn.Apply(a1, a2, a3, a4)
		c.returned = true
		return res
	})
}

// Func5 returns fn with every Apply logged under name.
func Func5[R, T1, T2, T3, T4, T5 any](
	t *Tracer,
	name string,
	fn partial.Function5[R, T1, T2, T3, T4, T5],
) partial.Function5[R, T1, T2, T3, T4, T5] {
	return partial.MustFunc5(func(a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) R {
		c := t.begin(name, a1, a2, a3, a4, a5)
		defer c.end()
		res := fn.Apply(a1, a2, a3, a4, a5)
		c.returned = true
		return res
	})
}

// Variadic returns fn with every Apply logged under name.
// Arguments already bound to fn count towards the logged arity and digest.
func Variadic[R, T any](t *Tracer, name string, fn partial.VariadicFunction[R, T]) partial.VariadicFunction[R, T] {
	prefix := fn.Bound()
	return partial.MustVariadic(func(args ...T) R {
		all := make([]any, 0, len(prefix)+len(args))
		for _, arg := range prefix {
			all = append(all, arg)
		}
		for _, arg := range args {
			all = append(all, arg)
		}
		c := t.begin(name, all...)
		defer c.end()
		res := fn.Apply(args...)
		c.returned = true
		return res
	})
}
