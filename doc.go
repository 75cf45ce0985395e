/*
Package asciitree renders the parse trees produced by grammar based parsers
as ASCII tree diagrams, for debugging a grammar at a glance without writing
custom traversal code.

A parse tree is a forest of Node values, each carrying the name of the
grammar rule that matched, the matched span of the input text, and the
nested rule matches in input order. Rendering an expression like

	(u + (v + w)) + (x + y) + z

produces

	expr
	├─ expr
	│  ├─ val "u"
	│  ├─ op "+"
	│  └─ expr
	│     ├─ val "v"
	│     ├─ op "+"
	│     └─ val "w"
	├─ op "+"
	├─ expr
	│  ├─ val "x"
	│  ├─ op "+"
	│  └─ val "y"
	├─ op "+"
	└─ val "z"

Leaves show their matched text in literal quotes, nodes with children show
only their rule name. The reserved EOI rule, emitted by parsers on the
successful end of input, is omitted from the output at every depth,
together with its subtree.

Rendering is a pure function of its input: it never fails, never mutates
the tree, and yields byte identical output for identical input. The output
is a debug aid for the console or a log, not a machine readable format, and
the matched text is not escaped.

The package also provides deep copying, pruning and canonical equality of
parse trees, and a JSON representation for trees handed over from parsers
running out of process. See the expr package for a small demo grammar and
the treefile package for loading serialized trees from files.
*/
package asciitree
