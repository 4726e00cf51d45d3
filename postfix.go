package calc

import "strings"

// InfixToPostfix converts a sequence of infix tokens to postfix (reverse Polish)
// order using the shunting-yard algorithm. Operands are output in their input
// order, and operators are output in the order they must be applied according
// to their precedence and associativity. Parentheses only group; they never
// appear in the result.
//
// Tokens which are neither operators nor parentheses are operands. They are
// not checked here; EvalPostfix reports operands which are not numbers. An
// unbalanced parenthesis is a *BracketError.
func InfixToPostfix(tokens []string) ([]string, error) {
	// The stack holds the indices of pending operators and open parentheses so
	// that errors can report where an unmatched parenthesis was.
	var stack []int
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		switch {
		case IsOperator(tok):
			op, err := Lookup(tok)
			if err != nil {
				// IsOperator and Lookup disagree.
				panic("calc: operator table missing " + tok)
			}
			for len(stack) > 0 {
				top := tokens[stack[len(stack)-1]]
				if top == "(" {
					break
				}
				if t, _ := Lookup(top); !t.yields(op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, i)
		case tok == "(":
			stack = append(stack, i)
		case tok == ")":
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Index: i, Right: tok}
				}
				k := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if tokens[k] == "(" {
					break
				}
				out = append(out, tokens[k])
			}
		default:
			out = append(out, tok)
		}
	}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tokens[k] == "(" {
			return nil, &BracketError{Index: k, Left: tokens[k]}
		}
		out = append(out, tokens[k])
	}
	return out, nil
}

// FormatPostfix formats a postfix sequence with tokens separated by spaces.
func FormatPostfix(postfix []string) string {
	return strings.Join(postfix, " ")
}
