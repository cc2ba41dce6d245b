package constraints

import (
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// SignalTypeConstraint checks that a cable's signal type is compatible with the
// raceway's circuit type. No compatibility rules are defined yet, so every edge is allowed.
type SignalTypeConstraint struct{}

// Name returns the constraint name
func (SignalTypeConstraint) Name() string { return "SignalType" }

// Allows always returns true
func (SignalTypeConstraint) Allows(records.Cable, *topology.Edge) (bool, string) {
	return true, ""
}

// FillCapacityConstraint compares the area a cable needs with the area left in
// the raceway. Per-raceway fill is not tracked yet, so every edge is allowed.
type FillCapacityConstraint struct{}

// Name returns the constraint name
func (FillCapacityConstraint) Name() string { return "FillCapacity" }

// Allows always returns true
func (FillCapacityConstraint) Allows(records.Cable, *topology.Edge) (bool, string) {
	return true, ""
}

// ZoneSegregationConstraint keeps cables out of raceways in incompatible
// hazardous-area zones. Zone classes are not populated yet, so every edge is allowed.
type ZoneSegregationConstraint struct{}

// Name returns the constraint name
func (ZoneSegregationConstraint) Name() string { return "ZoneSegregation" }

// Allows always returns true
func (ZoneSegregationConstraint) Allows(records.Cable, *topology.Edge) (bool, string) {
	return true, ""
}
