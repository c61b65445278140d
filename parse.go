package astcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr    = Term { ('+' | '-') Term }
// Term    = Factor { ('*' | '/') Factor }
// Factor  = Unary [ '^' Factor ]
// Unary   = [ '-' ] Postfix
// Postfix = Primary { '!' }
// Primary = num | func '(' Expr ')' | '(' Expr ')'

// Parse reads a single expression from src and returns its syntax tree. The
// entire input must be one expression; anything left over after the top-level
// term is a TrailingTokenError.
func Parse(src io.RuneScanner) (Node, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
		return n, nil
	default:
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
	}
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (Node, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term: a leaf or prefix expression followed by
// every binary and postfix operator that binds at least as tightly as until.
// If there is no error, then parseterm pushes the last token it scans,
// including EOF.
func parseterm(scan *lexer, until operator) (Node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			if tok.text == "!" {
				if !bangprec.moreBinding(until) {
					scan.push(tok)
					return n, nil
				}
				n = &Fact{X: n}
				continue
			}
			prec, op, ok := binop(tok.text)
			if !ok {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			n = &Bin{Op: op, Left: n, Right: rhs}
		default:
			// End of this term. The caller decides whether the token is a
			// legal way for its expression to end.
			scan.push(tok)
			return n, nil
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (Node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer accepted the token, so the only way to get here is a
			// huge exponent, which ParseFloat reports as ErrRange with an
			// infinite value.
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return &Num{Text: tok.text, Value: v}, nil
	case tokenIdent:
		if funcs[tok.text] == nil {
			return nil, &FunctionError{Col: tok.pos, Name: tok.text}
		}
		open, err := scan.next()
		if err != nil {
			return nil, err
		}
		if open.kind != tokenOpen {
			return nil, &FunctionError{Col: open.pos, Name: tok.text, Paren: true}
		}
		arg, err := parsegroup(scan)
		if err != nil {
			return nil, err
		}
		return &Call{Name: tok.text, Arg: arg}, nil
	case tokenOp:
		if tok.text != "-" {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		prec := negprec
		if !prec.moreBinding(until) {
			// x^-y parses as x^(-y). Just use the caller's precedence so the
			// negation takes the whole exponent.
			prec = until
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		return &Neg{X: rhs}, nil
	case tokenOpen:
		return parsegroup(scan)
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("astcalc: unknown token: " + tok.String())
	}
}

// parsegroup parses a full subexpression after an open parenthesis, up to and
// including the matching close parenthesis.
func parsegroup(scan *lexer) (Node, error) {
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	switch end := scan.must(); end.kind {
	case tokenClose:
		return n, nil
	case tokenEOF:
		return nil, &BracketError{Col: end.pos, Left: "(", Right: ""}
	default:
		return nil, &TrailingTokenError{Col: end.pos, Token: end.text}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then ok is false.
func binop(text string) (prec operator, op BinOp, ok bool) {
	switch text {
	case "+":
		return operator{1, false}, OpAdd, true
	case "-":
		return operator{1, false}, OpSub, true
	case "*":
		return operator{2, false}, OpMul, true
	case "/":
		return operator{2, false}, OpDiv, true
	case "^":
		return operator{4, true}, OpPow, true
	default:
		return operator{}, 0, false
	}
}

var (
	// negprec is the precedence of unary minus: tighter than addition,
	// looser than exponentiation.
	negprec = operator{3, true}
	// bangprec is the precedence of the postfix factorial, which binds
	// tighter than everything else.
	bangprec = operator{5, false}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true}
)
