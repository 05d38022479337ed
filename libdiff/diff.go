package libdiff

import (
	"strings"

	"github.com/signadot/snow-format/go-snow/encode"
	"github.com/signadot/snow-format/go-snow/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

type Change struct {
	Op   Op
	Node *ir.Node
}

// DiffChildren aligns the children of from and to: the children of sections
// and documents, or the positional values of tags.  Other nodes are compared
// whole.
func DiffChildren(from, to *ir.Node) []Change {
	if from.Type == ir.TextType || to.Type == ir.TextType {
		if ir.Equal(from, to) {
			return []Change{{Op: Equal, Node: from}}
		}
		return []Change{{Op: Delete, Node: from}, {Op: Insert, Node: to}}
	}
	m := &childMap{buckets: map[uint64][]int{}}
	fromRunes := m.runes(from.Values)
	toRunes := m.runes(to.Values)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Change, 0, max(len(from.Values), len(to.Values)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Node: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Change{Op: Equal, Node: from.Values[fi]})
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Op: Insert, Node: to.Values[ti]})
				ti++
			}
		}
	}
	return res
}

// childMap assigns the same rune to structurally equal nodes.
type childMap struct {
	buckets map[uint64][]int
	nodes   []*ir.Node
}

func (m *childMap) runes(ns []*ir.Node) []rune {
	rs := make([]rune, len(ns))
	for i, n := range ns {
		rs[i] = m.rune(n)
	}
	return rs
}

func (m *childMap) rune(n *ir.Node) rune {
	h := n.Hash()
	for _, j := range m.buckets[h] {
		if ir.Equal(m.nodes[j], n) {
			return rune(j)
		}
	}
	j := len(m.nodes)
	m.nodes = append(m.nodes, n)
	m.buckets[h] = append(m.buckets[h], j)
	return rune(j)
}

// DiffText compares the canonical forms of from and to.  Each change holds a
// run of text.
func DiffText(from, to *ir.Node) []Change {
	a, b := encode.String(from), encode.String(to)
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := diffCfg.DiffMain(a, b, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Change, len(diffs))
	for i, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		res[i] = Change{Op: op, Node: ir.FromString(d.Text)}
	}
	return res
}

// Changed reports whether any change is not Equal.
func Changed(cs []Change) bool {
	for _, c := range cs {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders one change per line, prefixed with its Op.  Deletions and
// insertions are coloured when colors is set.
func Format(cs []Change, colors bool) string {
	buf := strings.Builder{}
	for _, c := range cs {
		ln := c.Op.String() + " " + encode.String(c.Node)
		if colors {
			switch c.Op {
			case Delete:
				ln = color.RedString("%s", ln)
			case Insert:
				ln = color.GreenString("%s", ln)
			}
		}
		buf.WriteString(ln)
		buf.WriteByte('\n')
	}
	return buf.String()
}
