package ir

// Equal reports whether a and b are structurally equal.
//
// Text compares payloads only.  Tags compare positional values in order and
// named attributes as a set of pairs.  A Section and a Document are equal
// when their children are.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch {
	case a.Type == TextType && b.Type == TextType:
		return a.String == b.String
	case a.Type == TagType && b.Type == TagType:
		return equalSeq(a.Values, b.Values) && equalNamed(a, b)
	case a.Type.IsSectionLike() && b.Type.IsSectionLike():
		return equalSeq(a.Values, b.Values)
	}
	return false
}

func equalSeq(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalNamed(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i, k := range a.Fields {
		j := b.fieldIndex(k)
		if j == -1 {
			return false
		}
		if !Equal(a.Named[i], b.Named[j]) {
			return false
		}
	}
	return true
}
