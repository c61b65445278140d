package astcalc

import "strconv"

// OperatorError is an error indicating an operator token used in a position
// where it has no meaning, e.g. "*" at the start of an expression. It
// implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected an operand at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position at which the mismatch was noticed.
	Col int
	// Left is the opening parenthesis.
	Left string
	// Right is the mismatched closing parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// FunctionError is an error indicating an identifier that is not a known
// function name, or a function name not followed by a parenthesized argument.
// It implements InputError.
type FunctionError struct {
	// Col is the position of the offending token.
	Col int
	// Name is the identifier.
	Name string
	// Paren is whether the name was recognized but the parenthesis after it
	// was missing.
	Paren bool
}

func (err *FunctionError) Error() string {
	if err.Paren {
		return errpos(err.Col, "function "+strconv.Quote(err.Name)+" must be followed by (")
	}
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *FunctionError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string if
	// it was the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Token is the first unconsumed token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected input after expression: "+strconv.Quote(err.Token))
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*FunctionError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*LexError)(nil)
)
