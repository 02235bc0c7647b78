// Package partial provides typed partial application for Go functions.
//
// A raw function is adapted once, through the facade, into an immutable wrapper
// that remembers its arity in its type:
//
//	concat := partial.MustFunc3(func(a, b, c string) string { return a + b + c })
//	greet := concat.LeftBind("hello, ")  // Function2[string, string, string]
//	greet.Apply("go", "!")               // "hello, go!"
//
// Features:
//   - Function0 to Function5: fixed-arity wrappers with Apply.
//   - LeftBind / RightBind: fix the first or the last open argument, returning
//     a wrapper of arity N-1. Arguments keep their order and their types.
//   - VariadicFunction: wraps func(...T) R and accumulates arguments with Bind.
//   - Func0..Func5 and Variadic: the adapter facade, returning ErrNoCallable for nil.
//
// Binding is lazy. It only records the value; the wrapped computation runs
// when Apply is called, synchronously, on the caller's goroutine. Every bind
// returns a new value and never touches the receiver, so wrappers can be shared
// freely between goroutines.
//
// # Mixing LeftBind and RightBind
//
// Positions are structural. LeftBind always consumes the leftmost open slot and
// RightBind the rightmost one, whatever happened before:
//
//	f := partial.MustFunc3(func(a, b, c string) string { return a + b + c })
//	f.RightBind("c").LeftBind("a").Apply("b") // "abc"
//	f.LeftBind("c").RightBind("a").Apply("b") // "cba"
//
// There are no named slots, so reading a mixed chain requires counting from
// both ends. Prefer one direction per chain.
//
// # Failures
//
// Wrappers never recover. A panic or an error value produced by the computation
// reaches the caller exactly as a direct call with the fully assembled argument
// list would deliver it.
package partial
