package ecore

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// superTypeGraph builds a directed graph of root's eSuperTypes closure,
// edges pointing from a class to each of its direct supertypes. It backs
// both the DAG invariant check and the transitive-closure walk used by
// AllSuperTypes.
func superTypeGraph(root *Class) (g *simple.DirectedGraph, ids map[*Class]int64, byID map[int64]*Class) {
	g = simple.NewDirectedGraph()
	ids = map[*Class]int64{}
	byID = map[int64]*Class{}
	var nextID int64

	nodeFor := func(c *Class) int64 {
		if id, ok := ids[c]; ok {
			return id
		}
		id := nextID
		nextID++
		ids[c] = id
		byID[id] = c
		g.AddNode(simple.Node(id))
		return id
	}

	visited := map[*Class]bool{}
	var visit func(c *Class)
	visit = func(c *Class) {
		if visited[c] {
			return
		}
		visited[c] = true
		from := nodeFor(c)
		for _, s := range c.superTypes {
			to := nodeFor(s)
			g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			visit(s)
		}
	}
	visit(root)
	return g, ids, byID
}

// checkAcyclic reports ErrCyclicInheritance if c's eSuperTypes graph is
// not a DAG.
func checkAcyclic(c *Class) error {
	g, _, _ := superTypeGraph(c)
	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("%w: %v", ErrCyclicInheritance, err)
	}
	return nil
}

// allSuperTypes performs the transitive closure of c.eSuperTypes by
// breadth-first walk of the supertype graph, excluding c itself.
// Ordering is not guaranteed, matching section 4.1.
func allSuperTypes(c *Class) []*Class {
	g, ids, byID := superTypeGraph(c)
	self := ids[c]
	var result []*Class
	seen := map[int64]bool{self: true}
	var bf traverse.BreadthFirst
	bf.Walk(g, simple.Node(self), func(n graph.Node, _ int) bool {
		if !seen[n.ID()] {
			seen[n.ID()] = true
			result = append(result, byID[n.ID()])
		}
		return false
	})
	return result
}
