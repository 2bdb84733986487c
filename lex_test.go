package shunt

import (
	"reflect"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"newline", "2+3\n", "2+3"},
		{"spaces", " 2 \t+ 3 ", "2+3"},
		{"words", "3 root 8", "3root8"},
		{"constants", "pi e tau", "pietau"},
		{"brackets", "(1)[2]{3}", "(1)23"},
		{"others", "x=1;y,2#z", "12"},
		{"unicode", "2×3÷π", "23"},
		{"order", "b1a2c", "1a2"},
		{"all", Alphabet, Alphabet},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sanitize(c.src); got != c.want {
				t.Errorf("Sanitize(%q): want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	const (
		e   = "2.718281828459045"
		pi  = "3.141592653589793"
		tau = "6.283185307179586"
	)
	cases := []struct {
		src    string
		tokens []Token
	}{
		{"", nil},
		// numerals
		{"0", []Token{{"0", Numeral, 1}}},
		{"9876543210", []Token{{"9876543210", Numeral, 1}}},
		{"12.5", []Token{{"12.5", Numeral, 1}}},
		{".5", []Token{{".5", Numeral, 1}}},
		{"1.2.3", []Token{{"1.2", Numeral, 1}, {".3", Numeral, 4}}},
		{"1a2", []Token{{"12", Numeral, 1}}},
		// operators
		{"2+3*4", []Token{{"2", Numeral, 1}, {"+", Operator, 2}, {"3", Numeral, 3}, {"*", Operator, 4}, {"4", Numeral, 5}}},
		{"2^3", []Token{{"2", Numeral, 1}, {"^", Operator, 2}, {"3", Numeral, 3}}},
		{"1/2$3", []Token{{"1", Numeral, 1}, {"/", Operator, 2}, {"2", Numeral, 3}, {"$", Operator, 4}, {"3", Numeral, 5}}},
		{"++", []Token{{"+", Operator, 1}, {"+", Operator, 2}}},
		// signs
		{"-5", []Token{{"-5", Numeral, 1}}},
		{"5-3", []Token{{"5", Numeral, 1}, {"-3", Numeral, 2}}},
		{"5-", []Token{{"5", Numeral, 1}, {"-", Numeral, 2}}},
		{"2*-3", []Token{{"2", Numeral, 1}, {"*", Operator, 2}, {"-", Operator, 3}, {"3", Numeral, 4}}},
		{"(1)-2", []Token{{"(", OpenBracket, 1}, {"1", Numeral, 2}, {")", CloseBracket, 3}, {"-", Operator, 4}, {"2", Numeral, 5}}},
		{"1.-2", []Token{{"1.", Numeral, 1}, {"-", Operator, 3}, {"2", Numeral, 4}}},
		{"--3", []Token{{"-", Numeral, 1}, {"-", Operator, 2}, {"3", Numeral, 3}}},
		// constants
		{"e", []Token{{e, Numeral, 1}}},
		{"pi", []Token{{pi, Numeral, 1}}},
		{"tau", []Token{{tau, Numeral, 1}}},
		{"2pi", []Token{{"2", Numeral, 1}, {"*", Operator, 2}, {pi, Numeral, 2}}},
		{"2e", []Token{{"2", Numeral, 1}, {"*", Operator, 2}, {e, Numeral, 2}}},
		{"3tau", []Token{{"3", Numeral, 1}, {"*", Operator, 2}, {tau, Numeral, 2}}},
		{"1.pi", []Token{{"1.", Numeral, 1}, {pi, Numeral, 3}}},
		{"ee", []Token{{e, Numeral, 1}, {e, Numeral, 2}}},
		{"pi2", []Token{{pi, Numeral, 1}, {"2", Numeral, 3}}},
		{"-pi", []Token{{"-" + pi, Numeral, 1}}},
		{"2-e", []Token{{"2", Numeral, 1}, {"-" + e, Numeral, 2}}},
		{"ta", nil},
		{"roo", nil},
		// root
		{"root", []Token{{"$", Operator, 1}}},
		{"3root8", []Token{{"3", Numeral, 1}, {"$", Operator, 2}, {"8", Numeral, 6}}},
		{"root2)4", []Token{{"$", Operator, 1}, {"2", Numeral, 5}, {")", CloseBracket, 6}, {"4", Numeral, 7}}},
		// brackets
		{"(1)", []Token{{"(", OpenBracket, 1}, {"1", Numeral, 2}, {")", CloseBracket, 3}}},
		{"2(3)", []Token{{"2", Numeral, 1}, {"(", OpenBracket, 2}, {"3", Numeral, 3}, {")", CloseBracket, 4}}},
	}
	for _, c := range cases {
		got := Tokenize(c.src)
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("tokenizing %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
		}
	}
}

func TestTokenizeOperatorInvariant(t *testing.T) {
	srcs := []string{
		"2+3*4", "3root8root2", "2pi-e^tau", "((1$2)/3)-4", "-.5*-.5", "rootroot",
	}
	for _, src := range srcs {
		for _, tok := range Tokenize(src) {
			if tok.Kind != Operator {
				continue
			}
			if len(tok.Text) != 1 || precedences[tok.Text] == 0 {
				t.Errorf("tokenizing %q: invalid operator token %v", src, tok)
			}
		}
	}
}

func TestTokenKindString(t *testing.T) {
	cases := []struct {
		kind TokenKind
		want string
	}{
		{tokenNone, "None"},
		{Numeral, "Numeral"},
		{Operator, "Operator"},
		{OpenBracket, "OpenBracket"},
		{CloseBracket, "CloseBracket"},
		{TokenKind(99), "TokenKind(99)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("TokenKind(%d).String(): want %q, got %q", int(c.kind), c.want, got)
		}
	}
	if got := (Token{Text: "+", Kind: Operator, Pos: 3}).String(); got != "Operator:+@3" {
		t.Errorf("wrong token string: %q", got)
	}
}
