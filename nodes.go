package calc

import "strings"

// node is a node in the expression tree rebuilt from a postfix sequence.
// Operands are leaves; operators have both children.
type node struct {
	tok string

	left  *node
	right *node
}

// tree rebuilds the expression tree of a postfix sequence with the same stack
// discipline as EvalPostfix, reporting the same structural errors. Operands
// are not checked to be numbers.
func tree(postfix []string) (*node, error) {
	var stack []*node
	for i, tok := range postfix {
		if !IsOperator(tok) {
			stack = append(stack, &node{tok: tok})
			continue
		}
		if len(stack) < 2 {
			return nil, &OperandError{Index: i, Token: tok}
		}
		n := &node{tok: tok, left: stack[len(stack)-2], right: stack[len(stack)-1]}
		stack = append(stack[:len(stack)-2], n)
	}
	if len(stack) != 1 {
		return nil, &MalformedError{Index: len(postfix), Count: len(stack)}
	}
	return stack[0], nil
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	if n.left == nil {
		b.WriteString(n.tok)
		return
	}
	b.WriteByte('(')
	n.left.fmt(b)
	b.WriteString(n.tok)
	n.right.fmt(b)
	b.WriteByte(')')
}

// PostfixToInfix renders a postfix sequence as an infix expression in which
// every operation is in parentheses, showing how precedence and associativity
// grouped the original expression. Evaluating the result gives the same value
// as evaluating the postfix sequence.
func PostfixToInfix(postfix []string) (string, error) {
	n, err := tree(postfix)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}
