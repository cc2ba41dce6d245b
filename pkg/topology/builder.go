package topology

import (
	"github.com/dd0wney/cluso-raceway/pkg/records"
)

// BuildGraph builds the undirected raceway network. Endpoints are trimmed and
// otherwise compared exactly. A raceway missing either endpoint is skipped and
// counted in Stats.SkippedCount.
func BuildGraph(raceways []records.Raceway) *Graph {
	g := NewGraph()

	for _, r := range raceways {
		u, v := r.Endpoints()
		if u == "" || v == "" {
			g.skipped++
			continue
		}

		g.AddEdge(&Edge{
			RacewayID:   r.ID,
			U:           u,
			V:           v,
			CircuitType: r.CircuitType,
			Size:        r.Size,
		})
	}

	return g
}
