// Package clockgraph models clock-tree bring-up as a dependency graph: an edge
// u -> v means u has to be running (or programmed) before v is touched.
// A topological sort of the graph for a Config is a valid bring-up order.
package clockgraph

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"l4hal-go/clocks"
)

// Node is one programmable stage of the tree. Values double as graph IDs and
// break ties between unordered stages.
type Node int64

const (
	Flash Node = iota // wait states
	MSI
	HSI
	HSE
	PLL
	PLLSAI1
	PLLSAI2
	SYSCLK // CFGR switch and prescalers
	CLK48SEL
	HSI48
)

func (n Node) ID() int64 { return int64(n) }

func (n Node) String() string {
	switch n {
	case Flash:
		return "flash"
	case MSI:
		return "msi"
	case HSI:
		return "hsi"
	case HSE:
		return "hse"
	case PLL:
		return "pll"
	case PLLSAI1:
		return "pllsai1"
	case PLLSAI2:
		return "pllsai2"
	case SYSCLK:
		return "sysclk"
	case CLK48SEL:
		return "clk48sel"
	case HSI48:
		return "hsi48"
	}
	return "unknown"
}

var ErrCycle = errors.New("clock graph has a cycle")

type Graph struct {
	g *multi.DirectedGraph
}

// Build derives the bring-up graph for c. Only stages c actually uses are
// present.
func Build(c clocks.Config) *Graph {
	g := &Graph{g: multi.NewDirectedGraph()}
	g.g.AddNode(Flash)

	root := rootOscillator(c.InputSrc)
	if root != Flash {
		g.edge(Flash, root)
	}
	feed := root
	if _, ok := c.InputSrc.PLLSource(); ok {
		g.edge(root, PLL)
		if c.Sai1Enabled {
			g.edge(PLL, PLLSAI1)
			g.edge(PLLSAI1, SYSCLK)
		}
		if c.Sai2Enabled {
			g.edge(PLL, PLLSAI2)
			g.edge(PLLSAI2, SYSCLK)
		}
		feed = PLL
	}
	g.edge(feed, SYSCLK)

	g.edge(SYSCLK, CLK48SEL)
	switch c.Clk48Src {
	case clocks.Clk48HSI48:
		g.edge(CLK48SEL, HSI48)
	case clocks.Clk48PllSai1:
		if g.Has(PLLSAI1) {
			g.edge(PLLSAI1, CLK48SEL)
		}
	case clocks.Clk48Pll:
		if g.Has(PLL) {
			g.edge(PLL, CLK48SEL)
		}
	case clocks.Clk48MSI:
		if g.Has(MSI) {
			g.edge(MSI, CLK48SEL)
		}
	}
	return g
}

// rootOscillator is the oscillator SYSCLK ultimately runs from, or Flash when
// there is none (PLL with no input).
func rootOscillator(s clocks.InputSrc) Node {
	switch s.Kind() {
	case clocks.KindMSI:
		return MSI
	case clocks.KindHSI:
		return HSI
	case clocks.KindHSE:
		return HSE
	}
	pll, _ := s.PLLSource()
	switch pll.Kind() {
	case clocks.PllKindMSI:
		return MSI
	case clocks.PllKindHSI:
		return HSI
	case clocks.PllKindHSE:
		return HSE
	}
	return Flash
}

func (g *Graph) edge(from, to Node) {
	g.g.SetLine(g.g.NewLine(from, to))
}

func (g *Graph) Has(n Node) bool { return g.g.Node(n.ID()) != nil }

// DependsOn reports whether n can only be brought up after dep.
func (g *Graph) DependsOn(n, dep Node) bool {
	if !g.Has(n) || !g.Has(dep) || n == dep {
		return false
	}
	return topo.PathExistsIn(g.g, dep, n)
}

// Edges lists every direct dependency as from/to pairs.
func (g *Graph) Edges() [][2]Node {
	var out [][2]Node
	it := g.g.Edges()
	for it.Next() {
		e := it.Edge()
		out = append(out, [2]Node{Node(e.From().ID()), Node(e.To().ID())})
	}
	return out
}

// Order is the bring-up order; stages with no mutual dependency come in Node
// order.
func (g *Graph) Order() ([]Node, error) {
	sorted, err := topo.SortStabilized(g.g, nil)
	if err != nil {
		var cyc topo.Unorderable
		if errors.As(err, &cyc) {
			return nil, ErrCycle
		}
		return nil, err
	}
	out := make([]Node, len(sorted))
	for i, n := range sorted {
		out[i] = n.(Node)
	}
	return out, nil
}

// Order is a shorthand for Build(c).Order().
func Order(c clocks.Config) ([]Node, error) { return Build(c).Order() }

var _ graph.Node = Flash
