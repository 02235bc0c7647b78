package partial_test

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/partial_ive_go/partial"
)

func ExampleFunction5_LeftBind() {
	f := partial.MustFunc5(func(a, b, c, d, e string) string { return a + b + c + d + e })

	fmt.Println(f.LeftBind("1").LeftBind("2").LeftBind("3").LeftBind("4").LeftBind("5").Apply())
	// Output: 12345
}

func ExampleFunction5_RightBind() {
	f := partial.MustFunc5(func(a, b, c, d, e string) string { return a + b + c + d + e })

	fmt.Println(f.RightBind("1").RightBind("2").RightBind("3").RightBind("4").RightBind("5").Apply())
	// Output: 54321
}

func ExampleFunction2() {
	f := partial.MustFunc2(func(a, b string) string { return a + b })

	fmt.Println(f.LeftBind("1").Apply("2"))
	fmt.Println(f.RightBind("1").Apply("2"))
	// Output:
	// 12
	// 21
}

func ExampleVariadicFunction_Bind() {
	g := partial.MustVariadic(func(args ...string) string { return strings.Join(args, "") })

	fmt.Println(g.Bind("1").Bind("2").Apply())
	fmt.Println(g.Bind("1").Apply("2"))
	// Output:
	// 12
	// 12
}
