/*
Package expr implements a small infix arithmetic grammar producing
asciitree parse trees, primarily for demonstrating and testing the tree
rendering.

The grammar accepts chains of terms separated by the '+', '-', '*' and '/'
operators, where a term is an identifier, a number or a parenthesized
expression:

	(u + (v + w)) + (x + y) + z

Operator precedence is not interpreted: a chain of terms stays flat under a
single expr node, and only parentheses introduce nesting. On success the
returned forest ends with an EOI node, the end-of-input convention of
grammar generated parsers.
*/
package expr
