// Package astcalc implements an arithmetic calculator that builds an
// explicit syntax tree for every expression it reads.
//
// An expression is parsed into a tree of Num, Neg, Fact, Bin, and Call
// nodes. The tree can be evaluated to a float64 with Eval, evaluated at
// arbitrary precision with a Context, or drawn as text with Hierarchy
// and Tree. "-2^2!" parses as "-(2^(2!))": exponentiation is
// right-associative, unary minus binds looser than ^, and the postfix
// factorial binds tightest of all.
package astcalc
