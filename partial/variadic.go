package partial

// VariadicFunction wraps a computation over any number of T arguments and the
// arguments bound to it so far, in binding order.
//
// There is no RightBind: the last position is unknown until Apply supplies
// the remaining arguments.
type VariadicFunction[R, T any] struct {
	fn    func(...T) R
	bound []T
}

// Apply runs the computation with the bound arguments followed by args.
func (v VariadicFunction[R, T]) Apply(args ...T) R {
	if len(v.bound) == 0 {
		return v.fn(args...)
	}
	all := make([]T, 0, len(v.bound)+len(args))
	all = append(all, v.bound...)
	all = append(all, args...)
	return v.fn(all...)
}

// Bind appends arg to the bound arguments of a new VariadicFunction.
// The receiver is left untouched, so sibling binds never observe each other.
func (v VariadicFunction[R, T]) Bind(arg T) VariadicFunction[R, T] {
	bound := make([]T, len(v.bound), len(v.bound)+1)
	copy(bound, v.bound)
	return VariadicFunction[R, T]{
		fn:    v.fn,
		bound: append(bound, arg),
	}
}

// Bound returns a copy of the arguments bound so far.
func (v VariadicFunction[R, T]) Bound() []T {
	bound := make([]T, len(v.bound))
	copy(bound, v.bound)
	return bound
}
