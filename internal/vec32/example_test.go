package vec32_test

import (
	"fmt"

	"github.com/mjakub/bignum/internal/vec32"
)

func ExampleAdd() {
	sum := vec32.Add([]vec32.Word{0xFFFFFFFE}, []vec32.Word{0x33})
	fmt.Println(vec32.Format(sum))
	// Output:
	// 1'31
}

func ExampleMul() {
	a := []vec32.Word{0xFFFFFFFF, 0xFFFFFFFF}
	b := []vec32.Word{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}
	fmt.Println(vec32.Format(vec32.Mul(a, b)))
	// Output:
	// ffffffff'fffffffe'ffffffff'0'1
}

func ExampleDivWord() {
	q, r := vec32.DivWord([]vec32.Word{0xEA, 0x600}, 0x20)
	fmt.Println(vec32.Format(q), r)
	// Output:
	// 30'7 10
}

func ExampleDiv() {
	q, r := vec32.Div([]vec32.Word{0xBEEF, 0x60F}, []vec32.Word{0x0, 0x20})
	fmt.Println(vec32.Format(q), vec32.Format(r))

	// Division by zero is total.
	q, r = vec32.Div([]vec32.Word{1, 2}, nil)
	fmt.Println(vec32.Format(q), vec32.Format(r))
	// Output:
	// 30 f'beef
	// 0 0
}

func ExampleIncrementByWord() {
	v := []vec32.Word{0xFFFFFFFF, 0xFFFFFFFF}
	v = vec32.IncrementByWord(v, 1)
	fmt.Println(vec32.Format(v), len(v))
	// Output:
	// 1'0'0 3
}
