package shunt

import "strings"

// constant is an entry in the constant table. A value constant expands to a
// numeral; an operator constant expands to an operator and never takes an
// implicit multiplication.
type constant struct {
	name string
	text string
	kind TokenKind
}

// constants is the table of names recognized by the tokenizer. The value
// texts are the shortest decimal strings that round-trip to the float64
// nearest each constant.
var constants = []constant{
	{name: "e", text: "2.718281828459045", kind: Numeral},
	{name: "pi", text: "3.141592653589793", kind: Numeral},
	{name: "tau", text: "6.283185307179586", kind: Numeral},
	{name: "root", text: "$", kind: Operator},
}

// constantAt finds the constant whose name is a prefix of s.
func constantAt(s string) (constant, bool) {
	for _, c := range constants {
		if strings.HasPrefix(s, c.name) {
			return c, true
		}
	}
	return constant{}, false
}

// Constants returns the names of the constants the tokenizer expands, in the
// order they are tried.
func Constants() []string {
	r := make([]string, len(constants))
	for i, c := range constants {
		r[i] = c.name
	}
	return r
}
