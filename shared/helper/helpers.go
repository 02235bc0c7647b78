package helper

// Must is the panic-on-failure variant of any (value, error) constructor.
// Use when failure should be fatal (e.g., when the input is known at compile time).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
