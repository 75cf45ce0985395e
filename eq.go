package asciitree

func eq2(left, right *Node) bool {
	if left == nil && right == nil {
		return true
	}

	if left == nil || right == nil {
		return false
	}

	if left.Rule != right.Rule || left.Text != right.Text {
		return false
	}

	return eqLists2(visible(left.Children), visible(right.Children))
}

func eqLists2(left, right []*Node) bool {
	if len(left) != len(right) {
		return false
	}

	for i := range left {
		if !eq2(left[i], right[i]) {
			return false
		}
	}

	return true
}

// Eq implements canonical equality comparison of parse trees. End-of-input
// nodes do not take part in the comparison, two trees that differ only in
// them are equal. Rule names and matched text are compared verbatim. It
// returns true if all its arguments are pairwise equal.
func Eq(n ...*Node) bool {
	for i := 1; i < len(n); i++ {
		if !eq2(n[i-1], n[i]) {
			return false
		}
	}

	return true
}

// EqLists implement canonical equality comparison of parse forests, the
// ordered lists of sibling trees that parsers produce for one input. See
// Eq. It returns true if all its arguments are pairwise equal.
func EqLists(n ...[]*Node) bool {
	for i := 1; i < len(n); i++ {
		if !eqLists2(visible(n[i-1]), visible(n[i])) {
			return false
		}
	}

	return true
}
