package main

import (
	"flag"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/parsekit/asciitree"
	"github.com/parsekit/asciitree/expr"
	"github.com/parsekit/asciitree/treefile"
)

var (
	treeFile = flag.String("f", "",
		"render a serialized parse tree from this file instead of parsing an expression, '-' reads stdin")
	treeFormat = flag.String("format", "",
		"format of the tree file: json or yaml. Default: by file extension, json for stdin")
)

func loadTree() ([]*asciitree.Node, error) {
	if *treeFile == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}

		format := *treeFormat
		if format == "" {
			format = treefile.FormatJSON
		}

		return treefile.LoadString(format, string(content))
	}

	if *treeFormat != "" {
		content, err := os.ReadFile(*treeFile)
		if err != nil {
			return nil, err
		}

		return treefile.LoadString(*treeFormat, string(content))
	}

	return treefile.Load(*treeFile)
}

func main() {
	flag.Parse()

	var (
		nodes []*asciitree.Node
		err   error
	)

	switch {
	case *treeFile != "":
		nodes, err = loadTree()
	case len(flag.Args()) > 0:
		nodes, err = expr.Parse(strings.Join(flag.Args(), " "))
	default:
		log.Fatal("usage: asciitree <expression> | asciitree -f <tree file>")
	}

	if err != nil {
		log.Fatal(err)
	}

	if err := asciitree.Fprint(os.Stdout, nodes...); err != nil {
		log.Fatal(err)
	}
}
