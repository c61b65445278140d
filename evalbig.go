package astcalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// maxBigFactorial caps factorial operands in big evaluation, which otherwise
// has no overflow to stop a huge product.
const maxBigFactorial = 100000

// Context evaluates expressions to big.Float results at a fixed precision.
// It caches parsed numeric literals across evaluations. It is not safe to use
// a Context concurrently.
type Context struct {
	nums map[string]*big.Float
	prec uint
}

// NewContext creates an evaluation context computing to prec bits of
// precision. If prec is 0, the default is 64.
func NewContext(prec uint) *Context {
	if prec == 0 {
		prec = 64
	}
	return &Context{nums: make(map[string]*big.Float), prec: prec}
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval computes the value of the tree rooted at n to the context's precision.
// The domain rules match Eval, with one restriction inherited from the
// dependency: a negative base under ^ is a DomainError regardless of the
// exponent. sin, cos, and tan are computed in float64 and widened, so their
// results carry only float64 accuracy.
func (ctx *Context) Eval(n Node) (r *big.Float, err error) {
	defer func() {
		// big.Float arithmetic reports the few operations it cannot
		// represent, like inf-inf, by panicking with ErrNaN.
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok || !errors.As(e, new(big.ErrNaN)) {
			panic(p)
		}
		r, err = nil, &DomainError{X: math.NaN(), Op: "arithmetic"}
	}()
	return ctx.eval(n)
}

func (ctx *Context) eval(n Node) (*big.Float, error) {
	switch n := n.(type) {
	case *Num:
		return new(big.Float).SetPrec(ctx.prec).Set(ctx.num(n)), nil
	case *Neg:
		v, err := ctx.eval(n.X)
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	case *Fact:
		v, err := ctx.eval(n.X)
		if err != nil {
			return nil, err
		}
		return ctx.factorial(v)
	case *Bin:
		l, err := ctx.eval(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := ctx.eval(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case OpAdd:
			return l.Add(l, r), nil
		case OpSub:
			return l.Sub(l, r), nil
		case OpMul:
			return l.Mul(l, r), nil
		case OpDiv:
			// Guard against invalid divisions, 0/0 or inf/inf.
			if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
				rf, _ := r.Float64()
				return nil, &DomainError{X: rf, Op: "/"}
			}
			return l.Quo(l, r), nil
		case OpPow:
			// The dependency cannot raise a negative base.
			if l.Signbit() && l.Sign() != 0 {
				lf, _ := l.Float64()
				return nil, &DomainError{X: lf, Op: "^"}
			}
			return bigfloat.Pow(l, l, r), nil
		default:
			panic("astcalc: invalid binary operator " + n.Op.String())
		}
	case *Call:
		v, err := ctx.eval(n.Arg)
		if err != nil {
			return nil, err
		}
		if n.Name == "ln" && v.Sign() <= 0 {
			vf, _ := v.Float64()
			return nil, &DomainError{X: vf, Op: "ln"}
		}
		f := bigfuncs[n.Name]
		if f == nil {
			panic("astcalc: unknown function " + n.Name)
		}
		return f(new(big.Float).SetPrec(ctx.prec), v), nil
	default:
		panic("astcalc: invalid AST node")
	}
}

// num gets a possibly cached number from a literal's text.
func (ctx *Context) num(n *Num) *big.Float {
	if n.Text == "" {
		return new(big.Float).SetPrec(ctx.prec).SetFloat64(n.Value)
	}
	if r := ctx.nums[n.Text]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(n.Text, 10)
	if err != nil {
		// The lexer vouched for the text, so this is exponent overflow.
		r = new(big.Float).SetPrec(ctx.prec).SetFloat64(n.Value)
	}
	ctx.nums[n.Text] = r
	return r
}

func (ctx *Context) factorial(v *big.Float) (*big.Float, error) {
	if v.Signbit() && v.Sign() != 0 || !v.IsInt() || v.Cmp(big.NewFloat(maxBigFactorial)) > 0 {
		vf, _ := v.Float64()
		return nil, &DomainError{X: vf, Op: "!"}
	}
	k, _ := v.Int64()
	r := new(big.Float).SetPrec(ctx.prec).SetInt64(1)
	t := new(big.Float).SetPrec(ctx.prec)
	for i := int64(2); i <= k; i++ {
		r.Mul(r, t.SetInt64(i))
	}
	return r, nil
}
