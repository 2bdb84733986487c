package shunt

// precedences maps each operator to its binding strength. Higher binds
// tighter. Anything absent, notably "(", has precedence 0 and so is never
// popped by an operator.
var precedences = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"^": 3,
	"$": 3,
}

// precedence gets the precedence of a token on the operator stack.
func precedence(tok Token) int {
	if tok.Kind != Operator {
		return 0
	}
	return precedences[tok.Text]
}

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Every operator is left-associative, including ^
// and $. A close bracket with no matching open bracket is dropped without
// error; an open bracket with no matching close bracket is left in the output
// for Evaluate to report.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case Numeral:
			out = append(out, tok)
		case Operator:
			p := precedence(tok)
			for len(stack) > 0 && precedence(stack[len(stack)-1]) >= p {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case OpenBracket:
			stack = append(stack, tok)
		case CloseBracket:
			for len(stack) > 0 && stack[len(stack)-1].Kind != OpenBracket {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			panic("shunt: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return out
}
