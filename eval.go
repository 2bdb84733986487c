package shunt

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultDigits is the number of decimal places Format uses by default.
const DefaultDigits = 5

// Option is an option for evaluating expressions.
type Option interface {
	evalOption(evalctx) evalctx
}

type orderopt bool

// evalctx holds the settings for one evaluation.
type evalctx struct {
	// conventional selects left-op-right operand order.
	conventional bool
}

// Conventional evaluates binary operators with the left operand first, so
// "10/2" is 5 and "2^3" is 8. Without it, operands are taken in the reverse
// order, which is what the original calculator did.
func Conventional() Option {
	return orderopt(true)
}

func (o orderopt) evalOption(ctx evalctx) evalctx {
	ctx.conventional = bool(o)
	return ctx
}

// operand is a value on the evaluation stack along with the column of the
// token that produced it.
type operand struct {
	v   float64
	col int
}

// Evaluate computes the value of a postfix token sequence, as produced by
// ToPostfix. The first operand popped for an operator is its right operand
// and the second is its left; by default they are passed to the operator as
// apply(right, left), so "10/2" is 0.2. See Conventional.
//
// The error, if any, is one of *NumberError, *StackUnderflowError,
// *BracketError, *EmptyResultError, or *ExcessOperandsError.
func Evaluate(postfix []Token, opts ...Option) (float64, error) {
	var ctx evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		ctx = opt.evalOption(ctx)
	}
	stack := make([]operand, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case Numeral:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				var ne *strconv.NumError
				if errors.As(err, &ne) {
					err = ne.Err
				}
				return 0, &NumberError{Col: tok.Pos, Text: tok.Text, Err: err}
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, &NumberError{Col: tok.Pos, Text: tok.Text}
			}
			stack = append(stack, operand{v: v, col: tok.Pos})
		case Operator:
			if len(stack) < 2 {
				return 0, &StackUnderflowError{Col: tok.Pos, Operator: tok.Text, Have: len(stack)}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var r float64
			if ctx.conventional {
				r = apply(left.v, right.v, tok.Text)
			} else {
				r = apply(right.v, left.v, tok.Text)
			}
			stack = append(stack, operand{v: r, col: tok.Pos})
		case OpenBracket:
			return 0, &BracketError{Col: tok.Pos}
		default:
			panic("shunt: invalid postfix token: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return 0, &EmptyResultError{}
	case 1:
		return stack[0].v, nil
	default:
		return 0, &ExcessOperandsError{Col: stack[len(stack)-1].col, Count: len(stack)}
	}
}

// apply computes a op b. Evaluate passes the right operand as a unless it is
// evaluating conventionally. Root is a $ b = b^(1/a).
func apply(a, b float64, op string) float64 {
	switch op {
	case "^":
		return math.Pow(a, b)
	case "$":
		return math.Pow(b, 1/a)
	case "*":
		return a * b
	case "/":
		return a / b
	case "+":
		return a + b
	case "-":
		return a - b
	default:
		panic("shunt: unsupported operator " + strconv.Quote(op))
	}
}

// Calc is a shortcut to sanitize, tokenize, convert, and evaluate an
// expression.
func Calc(src string, opts ...Option) (float64, error) {
	return Evaluate(ToPostfix(Tokenize(Sanitize(src))), opts...)
}

// CalcReader reads one line from src and evaluates it. The line ends at the
// first newline or at EOF. Errors from src other than io.EOF are returned as
// *ReadError without evaluating anything.
func CalcReader(src io.Reader, opts ...Option) (float64, error) {
	line, err := ReadLine(src)
	if err != nil {
		return 0, err
	}
	return Calc(line, opts...)
}

// ReadLine reads a single line from src, including its newline if it has
// one. Reaching EOF is not an error.
func ReadLine(src io.Reader) (string, error) {
	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &ReadError{Err: err}
	}
	return line, nil
}

// Format renders a result as "Result: " followed by v with the given number
// of decimal places. A negative digits uses DefaultDigits.
func Format(v float64, digits int) string {
	if digits < 0 {
		digits = DefaultDigits
	}
	var b strings.Builder
	b.WriteString("Result: ")
	b.WriteString(strconv.FormatFloat(v, 'f', digits, 64))
	return b.String()
}
