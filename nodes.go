package astcalc

import "strconv"

// Node is a node in the abstract syntax tree of an expression. The concrete
// types are *Num, *Neg, *Fact, *Bin, and *Call; each owns exactly the
// children its kind implies, and a parsed tree never contains nil children.
type Node interface {
	// String renders the subtree in fully parenthesized infix form.
	String() string

	// label is the text the diagram renderers draw for this node alone.
	label() string
}

// BinOp identifies a binary arithmetic operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "BinOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// Num is a numeric literal leaf.
type Num struct {
	// Text is the literal as written. Evaluation contexts parse it at their
	// own precision. May be empty in hand-built trees.
	Text string
	// Value is the literal as a float64.
	Value float64
}

// Neg negates its operand.
type Neg struct {
	X Node
}

// Fact is the postfix factorial.
type Fact struct {
	X Node
}

// Bin applies a binary operator to two operands.
type Bin struct {
	Op          BinOp
	Left, Right Node
}

// Call applies one of the named functions to its argument.
type Call struct {
	Name string
	Arg  Node
}

func (n *Num) String() string { return n.label() }

func (n *Num) label() string {
	if n.Text != "" {
		return n.Text
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Neg) String() string { return "(-" + n.X.String() + ")" }

func (n *Neg) label() string { return "-" }

func (n *Fact) String() string { return "(" + n.X.String() + ")!" }

func (n *Fact) label() string { return "!" }

func (n *Bin) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *Bin) label() string { return n.Op.String() }

func (n *Call) String() string { return n.Name + "(" + n.Arg.String() + ")" }

func (n *Call) label() string { return n.Name }
