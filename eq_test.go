package asciitree

import "testing"

func TestEq(t *testing.T) {
	for _, test := range []struct {
		title  string
		nodes  []*Node
		expect bool
	}{{
		title:  "zero nodes",
		expect: true,
	}, {
		title:  "single node",
		nodes:  []*Node{leaf("val", "x")},
		expect: true,
	}, {
		title:  "eq nil",
		nodes:  []*Node{nil, nil},
		expect: true,
	}, {
		title: "one nil",
		nodes: []*Node{nil, {}},
	}, {
		title:  "eq leaves",
		nodes:  []*Node{leaf("val", "x"), leaf("val", "x")},
		expect: true,
	}, {
		title: "non-eq rule",
		nodes: []*Node{leaf("val", "x"), leaf("op", "x")},
	}, {
		title: "non-eq text",
		nodes: []*Node{leaf("val", "x"), leaf("val", "y")},
	}, {
		title: "non-eq child count",
		nodes: []*Node{
			branch("expr", leaf("val", "x")),
			branch("expr", leaf("val", "x"), leaf("val", "y")),
		},
	}, {
		title: "eq modulo end of input",
		nodes: []*Node{
			branch("expr", leaf("val", "x"), &Node{Rule: EndOfInput}),
			branch("expr", leaf("val", "x")),
		},
		expect: true,
	}, {
		title: "end of input subtree ignored",
		nodes: []*Node{
			branch("expr", branch(EndOfInput, leaf("val", "hidden"))),
			branch("expr"),
		},
		expect: true,
	}, {
		title: "non-eq nested",
		nodes: []*Node{
			branch("expr", branch("expr", leaf("val", "x"))),
			branch("expr", branch("expr", leaf("val", "y"))),
		},
	}, {
		title: "transitive",
		nodes: []*Node{leaf("val", "x"), leaf("val", "x"), leaf("val", "x")},
		expect: true,
	}} {
		t.Run(test.title, func(t *testing.T) {
			if Eq(test.nodes...) != test.expect {
				t.Error("failed to compare nodes")
			}
		})
	}
}

func TestEqLists(t *testing.T) {
	for _, test := range []struct {
		title  string
		lists  [][]*Node
		expect bool
	}{{
		title:  "zero lists",
		expect: true,
	}, {
		title: "eq forests",
		lists: [][]*Node{
			{leaf("val", "x"), leaf("op", "+")},
			{leaf("val", "x"), leaf("op", "+")},
		},
		expect: true,
	}, {
		title: "eq modulo trailing end of input",
		lists: [][]*Node{
			{leaf("val", "x"), {Rule: EndOfInput}},
			{leaf("val", "x")},
		},
		expect: true,
	}, {
		title: "non-eq length",
		lists: [][]*Node{
			{leaf("val", "x")},
			{leaf("val", "x"), leaf("val", "y")},
		},
	}, {
		title: "non-eq order",
		lists: [][]*Node{
			{leaf("val", "x"), leaf("val", "y")},
			{leaf("val", "y"), leaf("val", "x")},
		},
	}} {
		t.Run(test.title, func(t *testing.T) {
			if EqLists(test.lists...) != test.expect {
				t.Error("failed to compare forests")
			}
		})
	}
}
