package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEval() {
	fmt.Println(calc.Eval(""))
	fmt.Println(calc.Eval("3+4*2"))
	fmt.Println(calc.Eval("(3+4)*2"))
	fmt.Println(calc.Eval("2^3^2"))
	fmt.Println(calc.Eval("6-3-2"))
	fmt.Println(calc.Eval("1-2"))
	fmt.Println(calc.Eval("8/0"))
	fmt.Println(calc.Eval("(1+2"))
	fmt.Println(calc.Eval("+"))

	// Output:
	// NaN <nil>
	// 11 <nil>
	// 14 <nil>
	// 512 <nil>
	// 1 <nil>
	// -1 <nil>
	// 0 token 2: division by zero in "/"
	// 0 token 0: open bracket ( with no close bracket
	// 0 token 0: missing operand for "+"
}

func ExampleInfixToPostfix() {
	postfix, err := calc.InfixToPostfix(calc.Tokenize("(3+4)*2^3^2"))
	if err != nil {
		panic(err)
	}
	fmt.Println(calc.FormatPostfix(postfix))
	fmt.Println(calc.EvalPostfix(postfix))

	// Output:
	// 3 4 + 2 3 2 ^ ^ *
	// 3584 <nil>
}
