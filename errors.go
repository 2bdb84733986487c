package shunt

import "strconv"

// StackUnderflowError is an error indicating an operator evaluated with fewer
// than two operands. It implements InputError.
type StackUnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was evaluated.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *StackUnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *StackUnderflowError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeral that does not parse as a
// finite floating-point number. It implements InputError.
type NumberError struct {
	// Col is the position of the numeral.
	Col int
	// Text is the numeral's text.
	Text string
	// Err is the error from strconv, if there was one.
	Err error
}

func (err *NumberError) Error() string {
	msg := "invalid number " + strconv.Quote(err.Text)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return errpos(err.Col, msg)
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// EmptyResultError is an error indicating that evaluation left no value,
// which happens when the input has no numbers at all. It implements
// InputError with position 0.
type EmptyResultError struct{}

func (err *EmptyResultError) Error() string {
	return "no expression"
}

func (err *EmptyResultError) Pos() int {
	return 0
}

// ExcessOperandsError is an error indicating that evaluation left more than
// one value, e.g. for "5-3", which is the two numbers 5 and -3. It implements
// InputError.
type ExcessOperandsError struct {
	// Col is the position of the token that produced the last value.
	Col int
	// Count is the number of values left.
	Count int
}

func (err *ExcessOperandsError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Count)+" values with no operator to combine them")
}

func (err *ExcessOperandsError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket with no close bracket.
// Close brackets with no open bracket are ignored. It implements InputError.
type BracketError struct {
	// Col is the position of the open bracket.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket ( with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ReadError is an error reading the input line, reported before any
// evaluation happens.
type ReadError struct {
	Err error
}

func (err *ReadError) Error() string {
	return "reading input: " + err.Err.Error()
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column in the sanitized input of the token that
	// caused the error, or 0 if no token did.
	Pos() int
}

var (
	_ InputError = (*StackUnderflowError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EmptyResultError)(nil)
	_ InputError = (*ExcessOperandsError)(nil)
	_ InputError = (*BracketError)(nil)
)
