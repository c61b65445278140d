package astcalc

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.0e1", []lexToken{{text: "1.0e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", []lexToken{{pos: 1}}, 1},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{"1a", []lexToken{{pos: 1}}, 1},
		// a sign binds to a number only right after an exponent marker
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1-1", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "1", kind: tokenNum, pos: 3}}, 0},
		// identifiers
		{"sin", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}}, 0},
		{"ln", []lexToken{{text: "ln", kind: tokenIdent, pos: 1}}, 0},
		{"foo2", []lexToken{{text: "foo2", kind: tokenIdent, pos: 1}}, 0},
		{"sin(", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 4}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"^", []lexToken{{text: "^", kind: tokenOp, pos: 1}}, 0},
		{"3!", []lexToken{{text: "3", kind: tokenNum, pos: 1}, {text: "!", kind: tokenOp, pos: 2}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		// parentheses
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
			}
			if got.kind == tokenEOF {
				continue
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	scan := lex(strings.NewReader("12 $"))
	tok, err := scan.next()
	if err != nil || tok.kind != tokenNum {
		t.Fatalf("first token: got %v, %v", tok, err)
	}
	_, err = scan.next()
	lerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %#v", err)
	}
	if lerr.Pos() != 5 {
		t.Errorf("want error at column 5, got %d", lerr.Pos())
	}
	if !strings.Contains(lerr.Error(), "$") {
		t.Errorf("error message %q does not name the bad rune", lerr.Error())
	}
}
