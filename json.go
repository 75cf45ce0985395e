package asciitree

import (
	"bytes"
	"encoding/json"
)

// ParseJSON reads a parse forest from its JSON representation. It accepts
// either a single tree object or an array of sibling trees, so that output
// of parsers running out of process can be piped in without wrapping.
func ParseJSON(data []byte) ([]*Node, error) {
	d := json.NewDecoder(bytes.NewReader(data))

	t, err := d.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := t.(json.Delim); ok && delim == '[' {
		var nodes []*Node
		err := json.Unmarshal(data, &nodes)
		return nodes, err
	}

	n := &Node{}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}

	return []*Node{n}, nil
}

// MarshalJSON serializes a parse forest to JSON, as an array of trees.
// Empty matched text and empty child lists are omitted.
func MarshalJSON(nodes []*Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*Node{}
	}

	return json.Marshal(nodes)
}
