package routing

import (
	"fmt"
	"slices"

	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// CheckDeclaredRoute checks that a cable's declared raceway list forms a
// contiguous path from its From endpoint to its To endpoint. A list declared
// end-to-start is reversed before the walk. All comparisons are exact after trimming.
// An empty declaration is Valid; reachability is judged separately.
func CheckDeclaredRoute(g *topology.Graph, cable records.Cable, racewayByID records.RacewayIndex) RouteCheckResult {
	result := RouteCheckResult{
		CableID:    cable.ID,
		Status:     Valid,
		OffNetwork: records.OffRacewayNetwork(cable.RacewayRouting),
	}

	from := records.Trim(cable.From)
	to := records.Trim(cable.To)

	declared := records.SplitRouting(cable.RacewayRouting)
	if len(declared) == 0 {
		return result
	}

	first, ok := racewayByID.Lookup(declared[0])
	if !ok {
		return missingRaceway(result, declared[0])
	}

	if !first.Touches(from) {
		if !first.Touches(to) {
			result.Status = BrokenRoute
			result.OffendingRacewayA = declared[0]
			result.Message = fmt.Sprintf("Declared route does not start at '%s' or end at '%s'.", from, to)
			return result
		}

		declared = slices.Clone(declared)
		slices.Reverse(declared)
		if first, ok = racewayByID.Lookup(declared[0]); !ok {
			return missingRaceway(result, declared[0])
		}
	}

	if len(declared) == 1 {
		if !first.Touches(from) || !first.Touches(to) {
			result.Status = BrokenRoute
			result.OffendingRacewayA = first.ID
			result.Message = fmt.Sprintf("Declared route with a single raceway '%s' does not connect '%s' to '%s'.", first.ID, from, to)
		}
		return result
	}

	for i := 0; i < len(declared)-1; i++ {
		a, okA := racewayByID.Lookup(declared[i])
		b, okB := racewayByID.Lookup(declared[i+1])
		if !okA || !okB {
			result.Status = BrokenRoute
			result.OffendingRacewayA = declared[i]
			result.OffendingRacewayB = declared[i+1]
			result.Message = "Declared route references missing raceway ID(s) in sequence."
			return result
		}

		if _, shared := records.CommonEndpoint(a, b); !shared {
			result.Status = BrokenRoute
			result.OffendingRacewayA = a.ID
			result.OffendingRacewayB = b.ID
			result.Message = fmt.Sprintf("Declared raceways %s and %s are not contiguous.", a.ID, b.ID)
			return result
		}
	}

	lastID := declared[len(declared)-1]
	if last, ok := racewayByID.Lookup(lastID); !ok || !last.Touches(to) {
		result.Status = BrokenRoute
		result.OffendingRacewayA = lastID
		result.Message = fmt.Sprintf("Declared route does not end at '%s'.", to)
		return result
	}

	return result
}

func missingRaceway(result RouteCheckResult, id string) RouteCheckResult {
	result.Status = BrokenRoute
	result.OffendingRacewayA = id
	result.Message = fmt.Sprintf("Declared route references missing raceway ID '%s'.", id)
	return result
}
