package treefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/parsekit/asciitree"
)

// format names accepted by LoadString
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown tree file format")

func parseYAML(content []byte) ([]*asciitree.Node, error) {
	var nodes []*asciitree.Node
	if err := yaml.Unmarshal(content, &nodes); err == nil {
		return nodes, nil
	}

	// not a list of trees, try a single tree document
	n := &asciitree.Node{}
	if err := yaml.Unmarshal(content, n); err != nil {
		return nil, err
	}

	return []*asciitree.Node{n}, nil
}

// LoadString reads a parse forest from already loaded content in the given
// format. Both formats accept a single tree document or a list of sibling
// trees.
func LoadString(format, content string) ([]*asciitree.Node, error) {
	switch format {
	case FormatJSON:
		return asciitree.ParseJSON([]byte(content))
	case FormatYAML:
		return parseYAML([]byte(content))
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Load reads a parse forest from a file, choosing the format by the file
// extension: .json, .yaml or .yml.
func Load(path string) ([]*asciitree.Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadString(FormatJSON, string(content))
	case ".yaml", ".yml":
		return LoadString(FormatYAML, string(content))
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}
