package astcalc

import (
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// funcs maps each recognized function name to its float64 implementation.
// The parser treats exactly the identifiers in this map as functions; any
// other identifier is a FunctionError.
var funcs = map[string]func(float64) float64{
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
	"exp": math.Exp,
	"ln":  math.Log,
}

// bigfuncs holds the arbitrary-precision implementations used by Context.
// The trigonometric functions are not available from the dependency, so they
// are computed in float64 and widened.
var bigfuncs = map[string]func(out, in *big.Float) *big.Float{
	"exp": bigfloat.Exp,
	"ln":  bigfloat.Log,
	"sin": viaFloat64(math.Sin),
	"cos": viaFloat64(math.Cos),
	"tan": viaFloat64(math.Tan),
}

func viaFloat64(f func(float64) float64) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		x, _ := in.Float64()
		return out.SetFloat64(f(x))
	}
}

// Funcs returns the names of the functions the parser recognizes, sorted.
func Funcs() []string {
	v := make([]string, 0, len(funcs))
	for k := range funcs {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}
