package astcalc

import "strings"

// Hierarchy renders the tree rooted at n as an indented hierarchy diagram,
// one node per line. Non-last children hang off "├──" connectors, last
// children off "└──", and ancestors that still have children below continue
// as "│" bars. This view is exact for any tree shape: stripping the
// connector characters lists every node label in pre-order.
func Hierarchy(n Node) string {
	var b strings.Builder
	hierarchy(&b, n, "", false)
	return b.String()
}

func hierarchy(b *strings.Builder, n Node, prefix string, more bool) {
	b.WriteString(prefix)
	if more {
		b.WriteString("├── ")
	} else {
		b.WriteString("└── ")
	}
	b.WriteString(n.label())
	b.WriteByte('\n')
	if more {
		prefix += "│   "
	} else {
		prefix += "    "
	}
	switch n := n.(type) {
	case *Neg:
		hierarchy(b, n.X, prefix, false)
	case *Fact:
		hierarchy(b, n.X, prefix, false)
	case *Call:
		hierarchy(b, n.Arg, prefix, false)
	case *Bin:
		hierarchy(b, n.Left, prefix, true)
		hierarchy(b, n.Right, prefix, false)
	}
}

// Tree renders the tree rooted at n as a two-dimensional diagram with the
// root on top, one row of labels and one row of "/ \" or "|" edges per
// level. The layout is a heuristic tuned for mostly binary shapes: subtree
// widths are computed bottom-up in fixed-size cells, then positions are
// assigned top-down relative to each parent. Wide or unbalanced trees can
// render with crowded columns, but rendering never fails and is
// deterministic for a given tree. Hierarchy is the structurally exact view.
func Tree(n Node) string {
	width := cellCount(n)
	// Ensure width is odd so the root can start at the middle.
	if width%2 == 0 {
		width++
	}
	cell := labelWidth(n)
	// Ensure odd length so | can sit in the middle of a cell.
	if cell%2 == 0 {
		cell++
	}
	blank := strings.Repeat(" ", cell)

	var b strings.Builder
	row := []placedNode{{n: n, pos: (width + 1) / 2}}
	for len(row) > 0 {
		nodes := make([]string, width+1)
		edges := make([]string, width+1)
		for i := range nodes {
			nodes[i] = blank
			edges[i] = blank
		}
		var next []placedNode
		for _, p := range row {
			at := clamp(p.pos, width)
			nodes[at] = padCell(p.n.label(), cell, p.right)
			switch n := p.n.(type) {
			case *Bin:
				edges[at] = "/" + blank[2:] + "\\"
				next = append(next,
					placedNode{n: n.Left, pos: p.pos - childShift(n.Left)},
					placedNode{n: n.Right, pos: p.pos + childShift(n.Right), right: true},
				)
			case *Neg:
				edges[at] = padCell("|", cell, p.right)
				next = append(next, placedNode{n: n.X, pos: p.pos, right: p.right})
			case *Fact:
				edges[at] = padCell("|", cell, p.right)
				next = append(next, placedNode{n: n.X, pos: p.pos, right: p.right})
			case *Call:
				edges[at] = padCell("|", cell, p.right)
				next = append(next, placedNode{n: n.Arg, pos: p.pos, right: p.right})
			}
		}
		b.WriteString(strings.Join(nodes, ""))
		b.WriteByte('\n')
		b.WriteString(strings.Join(edges, ""))
		b.WriteByte('\n')
		row = next
	}
	return b.String()
}

type placedNode struct {
	n   Node
	pos int
	// right selects which side gets the longer padding when the label
	// cannot be centered exactly.
	right bool
}

// cellCount is the number of cells needed to display a subtree: binary nodes
// reserve three cells between their children for the connecting edges, while
// single-child nodes sit directly above their child.
func cellCount(n Node) int {
	switch n := n.(type) {
	case *Bin:
		return cellCount(n.Left) + cellCount(n.Right) + 3
	case *Neg:
		return cellCount(n.X)
	case *Fact:
		return cellCount(n.X)
	case *Call:
		return cellCount(n.Arg)
	default:
		return 1
	}
}

// labelWidth is the cell size for tree printing, based on the longest
// numeric label in the tree.
func labelWidth(n Node) int {
	switch n := n.(type) {
	case *Bin:
		l, r := labelWidth(n.Left), labelWidth(n.Right)
		if l > r {
			return l
		}
		return r
	case *Neg:
		return labelWidth(n.X)
	case *Fact:
		return labelWidth(n.X)
	case *Call:
		return labelWidth(n.Arg)
	default:
		if k := len(n.label()); k > 3 {
			return k
		}
		return 3
	}
}

// childShift is the horizontal cell offset of a child from its parent:
// binary children need an extra cell of clearance for their own edges.
func childShift(n Node) int {
	if _, ok := n.(*Bin); ok {
		return 2
	}
	return 1
}

func clamp(pos, width int) int {
	if pos < 0 {
		return 0
	}
	if pos > width {
		return width
	}
	return pos
}

// padCell centers s in a cell of the given width. When the padding is odd,
// the extra space goes after the label in left cells and before it in right
// cells.
func padCell(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	diff := width - len(s)
	short := strings.Repeat(" ", diff/2)
	long := strings.Repeat(" ", (diff+1)/2)
	if right {
		return long + s + short
	}
	return short + s + long
}
