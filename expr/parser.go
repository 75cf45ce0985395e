package expr

import (
	"fmt"

	"github.com/parsekit/asciitree"
)

// rule names as they appear in rendered trees
const (
	ruleExpr = "expr"
	ruleVal  = "val"
	ruleOp   = "op"
)

type parser struct {
	source string
	lex    *exprLex
	tok    token
	end    int
	atEOF  bool
}

func parseError(err error, pos int) error {
	return fmt.Errorf("parse failed at position %d: %w", pos, err)
}

// advance consumes the current token and scans the next one. Scanning past
// the end of the input is not an error, it sets the parser's atEOF flag.
func (p *parser) advance() error {
	p.end = p.tok.pos + len(p.tok.val)
	t, err := p.lex.next()
	switch err {
	case nil:
		p.tok = t
	case eof:
		p.atEOF = true
	default:
		return parseError(err, p.lex.offset())
	}

	return nil
}

// val | '(' expr ')'
func (p *parser) term() (*asciitree.Node, error) {
	if p.atEOF {
		return nil, parseError(incompleteExpression, len(p.source))
	}

	switch p.tok.id {
	case symbol, number:
		v := &asciitree.Node{Rule: ruleVal, Text: p.tok.val}
		return v, p.advance()
	case openparen:
		open := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}

		e, err := p.expression()
		if err != nil {
			return nil, err
		}

		if p.atEOF {
			return nil, parseError(unbalancedParens, open)
		}

		if p.tok.id != closeparen {
			return nil, parseError(unexpectedToken, p.tok.pos)
		}

		return e, p.advance()
	}

	return nil, parseError(unexpectedToken, p.tok.pos)
}

// term (op term)*
func (p *parser) expression() (*asciitree.Node, error) {
	start := p.tok.pos
	n := &asciitree.Node{Rule: ruleExpr}

	t, err := p.term()
	if err != nil {
		return nil, err
	}

	n.Children = append(n.Children, t)
	for !p.atEOF && p.tok.id == operator {
		n.Children = append(n.Children, &asciitree.Node{Rule: ruleOp, Text: p.tok.val})
		if err := p.advance(); err != nil {
			return nil, err
		}

		t, err := p.term()
		if err != nil {
			return nil, err
		}

		n.Children = append(n.Children, t)
	}

	n.Text = p.source[start:p.end]
	return n, nil
}

// Parse parses an arithmetic expression and returns its parse tree as a
// forest of asciitree nodes. On success the forest ends with an EOI node,
// following the convention of grammar generated parsers, so rendering a
// parse result always exercises the end-of-input filter.
//
// An expression is a chain of terms separated by the operators '+', '-',
// '*' and '/', where a term is an identifier, a number or a parenthesized
// expression. Parenthesized expressions appear as nested expr nodes,
// operator precedence is not interpreted, a chain stays flat.
func Parse(code string) ([]*asciitree.Node, error) {
	p := &parser{source: code, lex: newLexer(code)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.expression()
	if err != nil {
		return nil, err
	}

	if !p.atEOF {
		return nil, parseError(unexpectedToken, p.tok.pos)
	}

	return []*asciitree.Node{root, {Rule: asciitree.EndOfInput}}, nil
}
