package asciitree

// EndOfInput is the reserved rule identifier emitted by grammar parsers to
// signal the successful exhaustion of input. Nodes with this rule, and
// their subtrees, are never rendered.
const EndOfInput = "EOI"

// A Node represents one matched grammar rule instance in a parse tree.
type Node struct {

	// name of the grammar rule that matched
	Rule string `json:"rule" yaml:"rule"`

	// the substring of the input that the rule matched. May be empty
	// for rules that only group children.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// nested rule matches, in the order they occurred in the input
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Copy returns a deep copy of a node.
func Copy(n *Node) *Node {
	if n == nil {
		return nil
	}

	c := &Node{}
	c.Rule = n.Rule
	c.Text = n.Text
	if n.Children != nil {
		c.Children = CopyNodes(n.Children)
	}

	return c
}

// CopyNodes returns a deep copy of a slice of nodes.
func CopyNodes(n []*Node) []*Node {
	c := make([]*Node, len(n))
	for i, ni := range n {
		c[i] = Copy(ni)
	}

	return c
}

// visible filters out end-of-input nodes from a list of siblings. The
// subtrees of the remaining nodes are shared, not copied.
func visible(nodes []*Node) []*Node {
	v := nodes[:0:0]
	for _, n := range nodes {
		if n != nil && n.Rule != EndOfInput {
			v = append(v, n)
		}
	}

	return v
}

// Prune returns a deep copy of a forest with every end-of-input node
// removed, at every depth, together with its entire subtree. Children of a
// removed node are not promoted to its parent. The input is not modified.
func Prune(nodes []*Node) []*Node {
	v := visible(nodes)
	if len(v) == 0 {
		return nil
	}

	c := make([]*Node, len(v))
	for i, n := range v {
		c[i] = &Node{
			Rule:     n.Rule,
			Text:     n.Text,
			Children: Prune(n.Children),
		}
	}

	return c
}
