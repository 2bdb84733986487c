package shunt

import "strings"

// Operators contains the binary operators. "$" is the root operator, also
// spelled "root".
const Operators = "+-*/^$"

// Alphabet contains every byte that survives Sanitize: digits, the decimal
// point, operators, the letters of the constant names and of "root", and
// round brackets.
const Alphabet = "0123456789." + Operators + "pietaurot" + "()"

// Sanitize returns s with every byte outside Alphabet removed. The order of
// the remaining bytes is unchanged. The result may be empty.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) >= 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
