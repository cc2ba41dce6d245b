package routing

import (
	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// TryFindPath runs a breadth-first search from from to to and returns the
// shortest node path by edge count. The constraint, if not nil, is consulted
// before each unseen neighbor is queued; a rejected edge leaves its far node
// unseen so another edge may still reach it. reason holds the last rejection
// seen during the search, which is not necessarily the edge that made to unreachable.
// Missing endpoints fail immediately with an empty reason.
func TryFindPath(g *topology.Graph, from, to string, cable records.Cable, constraint constraints.PathConstraint) (found bool, pathNodes []string, reason string) {
	from = records.Trim(from)
	to = records.Trim(to)

	if !g.HasNode(from) || !g.HasNode(to) {
		return false, nil, ""
	}

	seen := map[string]bool{from: true}
	parent := make(map[string]string)
	queue := []string{from}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == to {
			return true, reconstructPath(parent, from, to), reason
		}

		for _, e := range g.Incident(u) {
			v := e.Other(u)
			if seen[v] {
				continue
			}

			if constraint != nil {
				if ok, why := constraint.Allows(cable, e); !ok {
					reason = why
					continue
				}
			}

			seen[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	return false, nil, reason
}

// reconstructPath walks the parent map back from to and returns the path in order
func reconstructPath(parent map[string]string, from, to string) []string {
	path := make([]string, 0)
	for current := to; current != from; current = parent[current] {
		path = append(path, current)
	}
	path = append(path, from)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
