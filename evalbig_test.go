package astcalc_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/astcalc/astcalc"
)

func TestContextEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "2", 2},
		{"decimal", "2.5", 2.5},
		{"precedence", "2+3*4", 14},
		{"grouping", "(2+3)*4", 20},
		{"rightpow", "2^3^2", 512},
		{"negpow", "-2^2", -4},
		{"factadd", "3!+1", 7},
		{"fact10", "10!", 3628800},
		{"div", "1/8", 0.125},
		{"ln1", "ln(1)", 0},
		{"sin0", "sin(0)", 0},
		{"lnexp", "ln(exp(1))", 1},
	}
	ctx := astcalc.NewContext(64)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := astcalc.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := ctx.Eval(n)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			f, _ := r.Float64()
			tol := 1e-9 * math.Max(1, math.Abs(c.want))
			if math.Abs(f-c.want) > tol {
				t.Errorf("%q evaluated to %g, want about %g", c.src, f, c.want)
			}
		})
	}
}

// TestContextPrecision checks that evaluation actually uses the requested
// precision: 30! needs 108 bits, so it is exact at 128 and not at 53.
func TestContextPrecision(t *testing.T) {
	n, err := astcalc.ParseString("30!")
	if err != nil {
		t.Fatal(err)
	}
	r, err := astcalc.NewContext(128).Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	want, _, err := new(big.Float).SetPrec(128).Parse("265252859812191058636308480000000", 10)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(want) != 0 {
		t.Errorf("30! evaluated to %s, want %s", r.Text('g', 50), want.Text('g', 50))
	}
}

func TestContextDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		op   string
	}{
		{"factneg", "(0-1)!", "!"},
		{"factfrac", "2.5!", "!"},
		{"lnzero", "ln(0)", "ln"},
		{"zerozero", "0/0", "/"},
		{"negbase", "(0-2)^2", "^"},
	}
	ctx := astcalc.NewContext(64)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := astcalc.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			_, err = ctx.Eval(n)
			var derr *astcalc.DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("%q: want DomainError, got %#v", c.src, err)
			}
			if derr.Op != c.op {
				t.Errorf("%q: want error from %q, got %q (%v)", c.src, c.op, derr.Op, derr)
			}
		})
	}
}

// TestContextLiteralCache checks that reusing a context does not corrupt its
// cached literals.
func TestContextLiteralCache(t *testing.T) {
	ctx := astcalc.NewContext(64)
	n, err := astcalc.ParseString("2+2")
	if err != nil {
		t.Fatal(err)
	}
	a, err := ctx.Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ctx.Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("2+2 evaluated to %g and then %g", a, b)
	}
	if f, _ := a.Float64(); f != 4 {
		t.Errorf("2+2 evaluated to %g", f)
	}
}

func TestContextHandBuiltTree(t *testing.T) {
	// A hand-built tree with no literal text still evaluates from Value.
	n := &astcalc.Bin{
		Op:    astcalc.OpMul,
		Left:  &astcalc.Num{Value: 6},
		Right: &astcalc.Num{Value: 7},
	}
	r, err := astcalc.NewContext(64).Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := r.Float64(); f != 42 {
		t.Errorf("6*7 evaluated to %g", f)
	}
}

func TestContextPrecDefault(t *testing.T) {
	if p := astcalc.NewContext(0).Prec(); p != 64 {
		t.Errorf("default precision is %d, want 64", p)
	}
	if p := astcalc.NewContext(200).Prec(); p != 200 {
		t.Errorf("precision is %d, want 200", p)
	}
}
