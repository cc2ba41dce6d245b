package constraints

import (
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// PathConstraint decides whether a cable may traverse a raceway edge.
// Implementations must be pure predicates with no shared mutable state so a
// single constraint can serve concurrent route searches.
type PathConstraint interface {
	// Allows returns true if the edge is traversable by the cable.
	// When it returns false, reason explains the rejection.
	Allows(cable records.Cable, edge *topology.Edge) (allowed bool, reason string)

	// Name returns a human-readable name for the constraint
	Name() string
}

// Func adapts a plain function to the PathConstraint interface
type Func struct {
	Label string
	Fn    func(cable records.Cable, edge *topology.Edge) (bool, string)
}

// Allows calls the wrapped function
func (f Func) Allows(cable records.Cable, edge *topology.Edge) (bool, string) {
	return f.Fn(cable, edge)
}

// Name returns the label given to the function
func (f Func) Name() string {
	if f.Label == "" {
		return "Func"
	}
	return f.Label
}
