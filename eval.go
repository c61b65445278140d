package astcalc

import (
	"math"
	"strconv"
)

// factorials holds n! for every n whose factorial is a finite float64.
// 170! is the last one.
var factorials [171]float64

func init() {
	factorials[0] = 1
	for i := 1; i < len(factorials); i++ {
		factorials[i] = factorials[i-1] * float64(i)
	}
}

// Eval computes the value of the tree rooted at n, post-order. Operations
// applied outside their mathematical domain fail with a *DomainError:
// factorial of a negative or non-integral operand, ln of a non-positive
// value, 0/0, inf/inf, and exponentiations that have no real result. Plain
// overflow follows IEEE arithmetic and yields an infinity without error.
func Eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *Num:
		return n.Value, nil
	case *Neg:
		v, err := Eval(n.X)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *Fact:
		v, err := Eval(n.X)
		if err != nil {
			return 0, err
		}
		return factorial(v)
	case *Bin:
		l, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			// Guard against invalid divisions, 0/0 or inf/inf.
			if l == 0 && r == 0 || math.IsInf(l, 0) && math.IsInf(r, 0) {
				return 0, &DomainError{X: r, Op: "/"}
			}
			return l / r, nil
		case OpPow:
			v := math.Pow(l, r)
			if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
				return 0, &DomainError{X: l, Op: "^"}
			}
			return v, nil
		default:
			panic("astcalc: invalid binary operator " + n.Op.String())
		}
	case *Call:
		v, err := Eval(n.Arg)
		if err != nil {
			return 0, err
		}
		if n.Name == "ln" && v <= 0 {
			return 0, &DomainError{X: v, Op: "ln"}
		}
		f := funcs[n.Name]
		if f == nil {
			panic("astcalc: unknown function " + strconv.Quote(n.Name))
		}
		return f(v), nil
	default:
		panic("astcalc: invalid AST node")
	}
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	n, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return Eval(n)
}

func factorial(v float64) (float64, error) {
	if v < 0 || v != math.Trunc(v) || math.IsNaN(v) {
		return 0, &DomainError{X: v, Op: "!"}
	}
	if v >= float64(len(factorials)) {
		// The product overflows float64.
		return math.Inf(1), nil
	}
	return factorials[int(v)], nil
}

// DomainError is an error returned when an operation is applied to an operand
// outside its mathematical domain.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Op is a name identifying the operation or function.
	Op string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Op
}
