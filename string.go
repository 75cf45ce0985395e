package asciitree

import (
	"fmt"
	"io"
	"strings"
)

const (
	teeConnector    = "├─ "
	cornerConnector = "└─ "
	barContinuation = "│  "
	gapContinuation = "   "
)

// label renders the single line of output owned by a node: the rule name,
// followed by the quoted matched text for leaves. The matched text of nodes
// that have children is suppressed, they only group their children. No
// escaping is applied to the text, the output is a debug aid, not a
// reparsable format.
func label(n *Node) string {
	if len(visible(n.Children)) > 0 {
		return n.Rule
	}

	return n.Rule + ` "` + strings.TrimSpace(n.Text) + `"`
}

func appendNode(lines []string, n *Node, prefix string, last bool) []string {
	connector, continuation := teeConnector, barContinuation
	if last {
		connector, continuation = cornerConnector, gapContinuation
	}

	lines = append(lines, prefix+connector+label(n))

	children := visible(n.Children)
	for i, c := range children {
		lines = appendNode(lines, c, prefix+continuation, i == len(children)-1)
	}

	return lines
}

func renderLines(nodes []*Node) []string {
	roots := visible(nodes)
	if len(roots) == 0 {
		return nil
	}

	var lines []string
	if len(roots) == 1 {

		// a single root is printed flush at column zero, without a
		// connector
		lines = append(lines, label(roots[0]))
		children := visible(roots[0].Children)
		for i, c := range children {
			lines = appendNode(lines, c, "", i == len(children)-1)
		}

		return lines
	}

	// multiple roots are printed as the children of an invisible root
	for i, n := range roots {
		lines = appendNode(lines, n, "", i == len(roots)-1)
	}

	return lines
}

// String renders a forest of parse nodes as an ASCII tree diagram, one line
// per node, without a trailing newline. End-of-input nodes and their
// subtrees are omitted at every depth, without promoting their children.
// Rendering an empty forest, or one with only end-of-input nodes, yields
// the empty string.
func String(nodes ...*Node) string {
	return strings.Join(renderLines(nodes), "\n")
}

// String renders the single tree rooted at n. See String.
func (n *Node) String() string {
	return String(n)
}

// Fprint writes the rendering of a forest of parse nodes to w, followed by
// a final newline. Nothing is written for an empty rendering. The only
// possible errors are those of the writer.
func Fprint(w io.Writer, nodes ...*Node) error {
	lines := renderLines(nodes)
	if len(lines) == 0 {
		return nil
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
