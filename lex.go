package shunt

import (
	"strconv"
	"strings"
)

// Token is a lexical token of an expression.
type Token struct {
	// Text is the token's text. For numerals, this is the decimal text that
	// is parsed during evaluation; for operators and brackets, it is a single
	// character.
	Text string
	// Kind is the kind of token.
	Kind TokenKind
	// Pos is the 1-based column in the sanitized input where the token
	// starts. An implicit multiplication has the column of the constant that
	// introduced it.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int

const (
	tokenNone TokenKind = iota
	// Numeral is a number, possibly signed, or an expanded constant.
	Numeral
	// Operator is one of the runes in Operators.
	Operator
	// OpenBracket is (.
	OpenBracket
	// CloseBracket is ).
	CloseBracket
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case Numeral:
		return "Numeral"
	case Operator:
		return "Operator"
	case OpenBracket:
		return "OpenBracket"
	case CloseBracket:
		return "CloseBracket"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  string
	pos  int
	toks []Token

	// buf holds the numeral being scanned, which starts at column start.
	buf   strings.Builder
	start int
	// dot is whether buf already has a decimal point.
	dot bool
	// afterDigit is set while the last byte consumed was a digit. In this
	// mode a minus sign begins a new signed numeral instead of being an
	// operator.
	afterDigit bool
}

// Tokenize splits a sanitized expression into tokens in a single pass.
// Tokenize never fails; malformed input produces tokens that fail to convert
// or evaluate later.
//
// Digits and one decimal point form a numeral. A minus sign at the start of
// the input or directly after a digit starts a new signed numeral, so "5-3"
// is the numerals "5" and "-3". The constants e, pi, and tau become numerals,
// preceded by an implicit "*" when they directly follow a digit; "root"
// becomes the "$" operator. Letters that form no constant are dropped.
func Tokenize(src string) []Token {
	l := lexer{src: src}
	for l.pos < len(l.src) {
		l.step()
	}
	l.flush()
	return l.toks
}

// step consumes at least one byte of input.
func (l *lexer) step() {
	c := l.src[l.pos]
	col := l.pos + 1
	switch {
	case c == '-' && (l.pos == 0 || l.afterDigit):
		l.flush()
		l.start = col
		l.buf.WriteByte(c)
		l.afterDigit = false
		l.pos++
	case '0' <= c && c <= '9':
		if l.buf.Len() == 0 {
			l.start = col
		}
		l.buf.WriteByte(c)
		l.afterDigit = true
		l.pos++
	case c == '.':
		if l.dot {
			// A second decimal point starts another numeral.
			l.flush()
		}
		if l.buf.Len() == 0 {
			l.start = col
		}
		l.buf.WriteByte(c)
		l.dot = true
		l.afterDigit = false
		l.pos++
	default:
		if k, ok := constantAt(l.src[l.pos:]); ok {
			l.constant(k, col)
			l.pos += len(k.name)
			return
		}
		switch {
		case strings.IndexByte(Operators, c) >= 0:
			l.flush()
			l.emit(string(c), Operator, col)
		case c == '(':
			l.flush()
			l.emit("(", OpenBracket, col)
		case c == ')':
			l.flush()
			l.emit(")", CloseBracket, col)
		}
		l.afterDigit = false
		l.pos++
	}
}

// constant emits the tokens for a constant found at column col.
func (l *lexer) constant(k constant, col int) {
	if k.kind == Operator {
		l.flush()
		l.emit(k.text, Operator, col)
		l.afterDigit = false
		return
	}
	sign := ""
	if l.buf.String() == "-" {
		// -pi is a single negative numeral.
		sign = "-"
		col = l.start
		l.reset()
	} else {
		l.flush()
	}
	if l.afterDigit {
		l.emit("*", Operator, col)
	}
	l.emit(sign+k.text, Numeral, col)
	l.afterDigit = false
}

// flush emits the numeral being scanned, if any.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.emit(l.buf.String(), Numeral, l.start)
	l.reset()
}

func (l *lexer) reset() {
	l.buf.Reset()
	l.dot = false
	l.start = 0
}

func (l *lexer) emit(text string, kind TokenKind, col int) {
	l.toks = append(l.toks, Token{Text: text, Kind: kind, Pos: col})
}
