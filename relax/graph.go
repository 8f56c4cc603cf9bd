// SPDX-License-Identifier: MIT

// graph.go holds the Graph container and its constructors: New (nodes
// only), Minimal (the standard relaxation) and Connect (custom edges).

package relax

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/stride"
)

// Graph is a relaxation over a network: a node arena (variables first, then
// non-unary factors in first-insertion order) and an edge arena referenced
// by index from the nodes' In/Out lists.
type Graph struct {
	net   *cfn.Network
	nodes []*Node
	edges []*Edge
}

// New builds the node set of a relaxation over net without any edges:
// one unary node per variable (carrying the network's unary costs when
// present) followed by one node per non-unary factor. Wire edges with
// Connect, or use Minimal for the standard construction.
func New(net *cfn.Network) (*Graph, error) {
	if net == nil {
		return nil, fmt.Errorf("relax.New: %w", ErrNilNetwork)
	}
	g := &Graph{net: net}

	// 1) Unary nodes, one per variable. Variables without explicit unary
	//    costs get a synthesized all-zero factor of the right shape.
	for v := 0; v < net.NumVariables(); v++ {
		f := net.UnaryFactor(v)
		if f == nil {
			f = &cfn.Factor{Variables: []int{v}, Dims: []int{net.Domain(v)}}
		}
		g.nodes = append(g.nodes, &Node{Factor: f})
	}

	// 2) Non-unary factor nodes, first-insertion order.
	for _, f := range net.Factors() {
		if !f.IsUnary() {
			g.nodes = append(g.nodes, &Node{Factor: f})
		}
	}
	return g, nil
}

// Minimal builds the standard relaxation of net: the New node set plus one
// edge from every non-unary factor to each of its variables' unary nodes,
// in scope order.
func Minimal(net *cfn.Network) (*Graph, error) {
	g, err := New(net)
	if err != nil {
		return nil, err
	}
	for a := net.NumVariables(); a < len(g.nodes); a++ {
		for _, v := range g.nodes[a].Factor.Variables {
			if _, err := g.Connect(a, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Connect adds a directed edge from node from to node to, caching the TB/TC
// offset pair and allocating the message buffer. The target's scope must be
// contained in the source's and the endpoints must differ.
//
// Errors: ErrNode, ErrSelfEdge, ErrNotContained.
func (g *Graph) Connect(from, to int) (*Edge, error) {
	// 1) Endpoint validation.
	if from < 0 || from >= len(g.nodes) || to < 0 || to >= len(g.nodes) {
		return nil, fmt.Errorf("relax.Connect: edge %d->%d: %w", from, to, ErrNode)
	}
	if from == to {
		return nil, fmt.Errorf("relax.Connect: edge %d->%d: %w", from, to, ErrSelfEdge)
	}

	// 2) Containment: split the source table along the target scope.
	var (
		src = g.nodes[from].Factor // enclosing scope
		dst = g.nodes[to].Factor   // contained scope
	)
	tb, tc, err := stride.Split(src.Variables, src.Dims, dst.Variables)
	if err != nil {
		return nil, fmt.Errorf("relax.Connect: edge %d->%d: %w", from, to, ErrNotContained)
	}

	// 3) Arena append plus index-list bookkeeping.
	e := &Edge{
		From: from,
		To:   to,
		TB:   tb,
		TC:   tc,
		Msg:  make([]float64, g.nodes[to].Size()),
	}
	at := len(g.edges)
	g.edges = append(g.edges, e)
	g.nodes[from].Out = append(g.nodes[from].Out, at)
	g.nodes[to].In = append(g.nodes[to].In, at)
	return e, nil
}

// Network returns the underlying cost-function network.
func (g *Graph) Network() *cfn.Network { return g.net }

// NumVariables returns the number of variables (= unary nodes).
func (g *Graph) NumVariables() int { return g.net.NumVariables() }

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Node returns the node at index i. Contract: i is in range.
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Edge returns the edge at index i. Contract: i is in range.
func (g *Graph) Edge(i int) *Edge { return g.edges[i] }

// Nodes returns the node arena. The slice is shared; treat it as read-only.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the edge arena. The slice is shared; treat it as read-only.
func (g *Graph) Edges() []*Edge { return g.edges }

// MaxTableSize returns the largest node table size, at least 1 on a graph
// with nodes (the scratch-buffer sizing used by passes and broadcasts).
func (g *Graph) MaxTableSize() int {
	m := 1
	for _, n := range g.nodes {
		if s := n.Size(); s > m {
			m = s
		}
	}
	return m
}

// MaxMessageSize returns the largest edge message length, at least 1.
func (g *Graph) MaxMessageSize() int {
	m := 1
	for _, e := range g.edges {
		if len(e.Msg) > m {
			m = len(e.Msg)
		}
	}
	return m
}
