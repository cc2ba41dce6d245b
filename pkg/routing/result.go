// Package routing validates cable routes against the raceway network: the
// declared route contiguity check and constrained shortest-path reachability.
package routing

// RouteStatus is the outcome of checking one cable
type RouteStatus int

const (
	Valid               RouteStatus = iota
	BrokenRoute                     // declared route is not contiguous
	NotReachable                    // no path between the endpoints
	ViolatesConstraints             // paths exist only through rejected raceways
)

func (s RouteStatus) String() string {
	switch s {
	case Valid:
		return "Valid"
	case BrokenRoute:
		return "BrokenRoute"
	case NotReachable:
		return "NotReachable"
	case ViolatesConstraints:
		return "ViolatesConstraints"
	default:
		return "Unknown"
	}
}

// RouteCheckResult is the per-cable outcome
type RouteCheckResult struct {
	CableID           string
	Status            RouteStatus
	Message           string
	PathNodes         []string // node path found by reachability search, if any
	OffendingRacewayA string
	OffendingRacewayB string
	ConstraintReason  string
	// OffNetwork is set when the routing is tray-routed or "-". Such cables
	// still fail the declared route check.
	OffNetwork        bool
}

// OK reports whether the route is valid
func (r RouteCheckResult) OK() bool {
	return r.Status == Valid
}
