// Package shunt implements a one-line floating-point calculator.
//
// An expression is evaluated in four stages: Sanitize drops everything that
// is not part of the calculator's alphabet, Tokenize splits the result into
// numerals, operators, and brackets, ToPostfix reorders the tokens with the
// shunting-yard algorithm, and Evaluate runs the postfix sequence on a stack.
// Calc does all four.
//
// The named constants pi, e, and tau expand to their decimal values, and a
// constant written directly after a digit is multiplied: "2pi" is "2*pi".
// "a root b" and "a$b" are both the a-th root of b, and "a^b" is
// exponentiation. All operators are left-associative, so "2^3^2" is
// "(2^3)^2".
//
// Two historical quirks are kept by default. A minus sign at the start of the
// input or directly after a digit is a sign, not a subtraction, so "5-3" is
// the two numbers 5 and -3. And binary operators take their operands in
// reverse, so "10/2" is 0.2 and "2^3" is 9. Pass Conventional to Evaluate or
// Calc for the textbook operand order.
//
package shunt
