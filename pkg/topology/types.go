// Package topology models the raceway network as an undirected multigraph.
// Nodes are trimmed endpoint labels compared exactly; edges are raceway segments.
package topology

// Edge is an undirected raceway segment between U and V.
// Attributes beyond the endpoints are optional and feed path constraints.
type Edge struct {
	RacewayID string
	U         string
	V         string

	RacewayType      string   // e.g. CONDUIT, TRAY, DUCTBANK
	CircuitType      string   // power, control, instrumentation ...
	Size             string   // trade size label as scheduled
	FillCapacityArea *float64 // usable area, square inches
	ZoneClass        string   // hazardous area classification
	Length           *float64
}

// Other returns the endpoint opposite node. For a self-loop both ends are the same.
func (e *Edge) Other(node string) string {
	if node == e.U {
		return e.V
	}
	return e.U
}

// IsSelfLoop reports whether both endpoints are the same label
func (e *Edge) IsSelfLoop() bool {
	return e.U == e.V
}

// Stats summarizes a built graph
type Stats struct {
	NodeCount     int
	EdgeCount     int
	SelfLoopCount int
	SkippedCount  int // raceways excluded for a missing endpoint
}

// Component is one connected island of the network
type Component struct {
	ID    int
	Nodes []string
	Size  int
}
