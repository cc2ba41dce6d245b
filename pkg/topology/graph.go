package topology

import "sort"

// Graph is an adjacency list over string node labels. Once built it is only read,
// so it may be shared across goroutines without locking.
type Graph struct {
	adj     map[string][]*Edge
	order   []string // insertion order, for deterministic iteration
	edges   []*Edge
	skipped int
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]*Edge),
	}
}

// AddNode registers a node if it is not already present
func (g *Graph) AddNode(node string) {
	if _, exists := g.adj[node]; exists {
		return
	}
	g.adj[node] = make([]*Edge, 0)
	g.order = append(g.order, node)
}

// AddEdge adds an undirected edge, registering both endpoints. A self-loop is
// listed once in its node's adjacency.
func (g *Graph) AddEdge(e *Edge) {
	g.AddNode(e.U)
	g.AddNode(e.V)

	g.adj[e.U] = append(g.adj[e.U], e)
	if !e.IsSelfLoop() {
		g.adj[e.V] = append(g.adj[e.V], e)
	}
	g.edges = append(g.edges, e)
}

// HasNode reports whether node is in the graph
func (g *Graph) HasNode(node string) bool {
	_, ok := g.adj[node]
	return ok
}

// Incident returns the edges touching node, in insertion order
func (g *Graph) Incident(node string) []*Edge {
	return g.adj[node]
}

// Nodes returns all node labels in insertion order
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges, parallel edges included
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Stats returns node, edge and data-quality counts
func (g *Graph) Stats() Stats {
	loops := 0
	for _, e := range g.edges {
		if e.IsSelfLoop() {
			loops++
		}
	}
	return Stats{
		NodeCount:     len(g.order),
		EdgeCount:     len(g.edges),
		SelfLoopCount: loops,
		SkippedCount:  g.skipped,
	}
}

// Components finds the connected islands of the network using BFS.
// Components are numbered in order of their first node's insertion; node lists are sorted.
func (g *Graph) Components() []Component {
	visited := make(map[string]bool, len(g.order))
	components := make([]Component, 0)

	for _, start := range g.order {
		if visited[start] {
			continue
		}

		component := Component{ID: len(components)}
		queue := []string{start}
		visited[start] = true

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			component.Nodes = append(component.Nodes, node)

			for _, e := range g.adj[node] {
				next := e.Other(node)
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Strings(component.Nodes)
		component.Size = len(component.Nodes)
		components = append(components, component)
	}

	return components
}
