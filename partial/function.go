package partial

// Function0 is a computation with no open arguments.
// It is the terminal case of binding and has no bind operations.
type Function0[R any] struct {
	body body0[R]
}

// Apply runs the computation.
func (f Function0[R]) Apply() R {
	return f.body.call()
}

// Function1 is a computation with one open argument.
type Function1[R, T1 any] struct {
	body body1[R, T1]
}

// Apply runs the computation with the given argument.
func (f Function1[R, T1]) Apply(arg1 T1) R {
	return f.body.call(arg1)
}

// LeftBind fixes the only open argument.
func (f Function1[R, T1]) LeftBind(arg T1) Function0[R] {
	return Function0[R]{body: bound1[R, T1]{fn: f, arg: arg}}
}

// RightBind fixes the only open argument.
// For arity one it is indistinguishable from LeftBind.
func (f Function1[R, T1]) RightBind(arg T1) Function0[R] {
	return Function0[R]{body: bound1[R, T1]{fn: f, arg: arg}}
}

// Function2 is a computation with two open arguments.
type Function2[R, T1, T2 any] struct {
	body body2[R, T1, T2]
}

// Apply runs the computation with the given arguments.
func (f Function2[R, T1, T2]) Apply(arg1 T1, arg2 T2) R {
	return f.body.call(arg1, arg2)
}

// LeftBind fixes the first open argument.
func (f Function2[R, T1, T2]) LeftBind(arg T1) Function1[R, T2] {
	return Function1[R, T2]{body: left2[R, T1, T2]{fn: f, arg: arg}}
}

// RightBind fixes the last open argument.
func (f Function2[R, T1, T2]) RightBind(arg T2) Function1[R, T1] {
	return Function1[R, T1]{body: right2[R, T1, T2]{fn: f, arg: arg}}
}

// Function3 is a computation with three open arguments.
type Function3[R, T1, T2, T3 any] struct {
	body body3[R, T1, T2, T3]
}

// Apply runs the computation with the given arguments.
func (f Function3[R, T1, T2, T3]) Apply(arg1 T1, arg2 T2, arg3 T3) R {
	return f.body.call(arg1, arg2, arg3)
}

// LeftBind fixes the first open argument.
func (f Function3[R, T1, T2, T3]) LeftBind(arg T1) Function2[R, T2, T3] {
	return Function2[R, T2, T3]{body: left3[R, T1, T2, T3]{fn: f, arg: arg}}
}

// RightBind fixes the last open argument.
func (f Function3[R, T1, T2, T3]) RightBind(arg T3) Function2[R, T1, T2] {
	return Function2[R, T1, T2]{body: right3[R, T1, T2, T3]{fn: f, arg: arg}}
}

// Function4 is a computation with four open arguments.
type Function4[R, T1, T2, T3, T4 any] struct {
	body body4[R, T1, T2, T3, T4]
}

// Apply runs the computation with the given arguments.
func (f Function4[R, T1, T2, T3, T4]) Apply(arg1 T1, arg2 T2, arg3 T3, arg4 T4) R {
	return f.body.call(arg1, arg2, arg3, arg4)
}

// LeftBind fixes the first open argument.
func (f Function4[R, T1, T2, T3, T4]) LeftBind(arg T1) Function3[R, T2, T3, T4] {
	return Function3[R, T2, T3, T4]{body: left4[R, T1, T2, T3, T4]{fn: f, arg: arg}}
}

// RightBind fixes the last open argument.
func (f Function4[R, T1, T2, T3, T4]) RightBind(arg T4) Function3[R, T1, T2, T3] {
	return Function3[R, T1, T2, T3]{body: right4[R, T1, T2, T3, T4]{fn: f, arg: arg}}
}

// Function5 is a computation with five open arguments.
type Function5[R, T1, T2, T3, T4, T5 any] struct {
	body body5[R, T1, T2, T3, T4, T5]
}

// Apply runs the computation with the given arguments.
func (f Function5[R, T1, T2, T3, T4, T5]) Apply(arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5) R {
	return f.body.call(arg1, arg2, arg3, arg4, arg5)
}

// LeftBind fixes the first open argument.
func (f Function5[R, T1, T2, T3, T4, T5]) LeftBind(arg T1) Function4[R, T2, T3, T4, T5] {
	return Function4[R, T2, T3, T4, T5]{body: left5[R, T1, T2, T3, T4, T5]{fn: f, arg: arg}}
}

// RightBind fixes the last open argument.
func (f Function5[R, T1, T2, T3, T4, T5]) RightBind(arg T5) Function4[R, T1, T2, T3, T4] {
	return Function4[R, T1, T2, T3, T4]{body: right5[R, T1, T2, T3, T4, T5]{fn: f, arg: arg}}
}
