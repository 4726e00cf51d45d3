// Package calc implements a calculator for simple arithmetic expressions.
//
// Evaluation is a pipeline of three pure steps. Tokenize splits an infix
// expression like "(3+4)*2" into tokens. InfixToPostfix reorders the tokens
// into reverse Polish notation, "3 4 + 2 *", using the shunting-yard
// algorithm. EvalPostfix computes the value with a stack machine. Eval runs
// all three.
//
// The operators are + - * / and ^, where "a^b" is exponentiation. ^ binds
// tightest and groups right to left, so "2^3^2" is "2^(3^2)"; * and / come
// next, and + and - bind loosest, all grouping left to right. There are no
// negative literals, no unary minus, and no variables or functions.
//
// Eval reports the empty expression as NaN with no error. A Context evaluates
// with big.Float values at a chosen precision; its Eval method returns a nil
// result for the empty expression, so callers wanting the NaN result should use
// the package-level Eval.
package calc
