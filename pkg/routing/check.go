package routing

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// Check runs the declared route check and, if it passes, constrained
// reachability between the cable's endpoints.
func Check(g *topology.Graph, cable records.Cable, racewayByID records.RacewayIndex, constraint constraints.PathConstraint) RouteCheckResult {
	result := CheckDeclaredRoute(g, cable, racewayByID)
	if result.Status != Valid {
		return result
	}

	from := records.Trim(cable.From)
	to := records.Trim(cable.To)

	found, path, reason := TryFindPath(g, from, to, cable, constraint)
	result.PathNodes = path
	result.ConstraintReason = reason

	switch {
	case found:
		result.Message = fmt.Sprintf("Route %s", strings.Join(path, " -> "))
	case reason != "":
		result.Status = ViolatesConstraints
		result.Message = fmt.Sprintf("No path from '%s' to '%s' satisfies constraints: %s", from, to, reason)
	default:
		result.Status = NotReachable
		result.Message = fmt.Sprintf("No path from '%s' to '%s' in the raceway network.", from, to)
	}
	return result
}
