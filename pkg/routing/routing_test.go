package routing

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

func network(raceways ...records.Raceway) (*topology.Graph, records.RacewayIndex) {
	return topology.BuildGraph(raceways), records.IndexRaceways(raceways)
}

func rw(id, from, to string) records.Raceway {
	return records.Raceway{ID: id, From: from, To: to}
}

func TestCheckDeclaredRoute(t *testing.T) {
	g, idx := network(
		rw("R-1", "A", "B"),
		rw("R-2", "B", "C"),
		rw("R-3", "X", "Y"),
		rw("R-5", "A", "D"),
	)

	tests := []struct {
		name      string
		cable     records.Cable
		status    RouteStatus
		offending string
	}{
		{"forward", records.Cable{ID: "C-1", From: "A", To: "C", RacewayRouting: "R-1,R-2"}, Valid, ""},
		{"reversed", records.Cable{ID: "C-2", From: "A", To: "C", RacewayRouting: "R-2,R-1"}, Valid, ""},
		{"semicolon and spaces", records.Cable{ID: "C-3", From: " A ", To: "C", RacewayRouting: "R-1; R-2"}, Valid, ""},
		{"empty routing", records.Cable{ID: "C-4", From: "A", To: "Z"}, Valid, ""},
		{"single segment", records.Cable{ID: "C-5", From: "A", To: "D", RacewayRouting: "R-5"}, Valid, ""},
		{"single segment reversed endpoints", records.Cable{ID: "C-6", From: "D", To: "A", RacewayRouting: "R-5"}, Valid, ""},
		{"single segment wrong end", records.Cable{ID: "C-7", From: "A", To: "E", RacewayRouting: "R-5"}, BrokenRoute, "R-5"},
		{"missing reference", records.Cable{ID: "C-8", From: "A", To: "C", RacewayRouting: "R-99"}, BrokenRoute, "R-99"},
		{"reversed onto missing reference", records.Cable{ID: "C-14", From: "A", To: "C", RacewayRouting: "R-2,R-77"}, BrokenRoute, "R-77"},
		{"touches neither endpoint", records.Cable{ID: "C-9", From: "A", To: "C", RacewayRouting: "R-3,R-2"}, BrokenRoute, "R-3"},
		{"not contiguous", records.Cable{ID: "C-10", From: "A", To: "Y", RacewayRouting: "R-1,R-3"}, BrokenRoute, "R-1"},
		{"missing in sequence", records.Cable{ID: "C-11", From: "A", To: "C", RacewayRouting: "R-1,R-42,R-2"}, BrokenRoute, "R-1"},
		{"does not end at To", records.Cable{ID: "C-12", From: "A", To: "D", RacewayRouting: "R-1,R-2"}, BrokenRoute, "R-2"},
		{"case sensitive endpoints", records.Cable{ID: "C-13", From: "a", To: "C", RacewayRouting: "R-1,R-2"}, BrokenRoute, "R-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDeclaredRoute(g, tt.cable, idx)
			assert.Equal(t, tt.cable.ID, result.CableID)
			assert.Equal(t, tt.status, result.Status, result.Message)
			assert.Equal(t, tt.offending, result.OffendingRacewayA)
		})
	}
}

func TestCheckDeclaredRoute_MessagesNameRaceways(t *testing.T) {
	g, idx := network(rw("R-1", "A", "B"), rw("R-3", "X", "Y"))

	result := CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: "A", To: "Z", RacewayRouting: "R-99"}, idx)
	assert.Contains(t, result.Message, "R-99")

	result = CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: "A", To: "Y", RacewayRouting: "R-1,R-3"}, idx)
	assert.Equal(t, "R-3", result.OffendingRacewayB)
	assert.Contains(t, result.Message, "R-1")
	assert.Contains(t, result.Message, "R-3")

	result = CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: "Z", To: "A", RacewayRouting: "R-1,R-78"}, idx)
	assert.Equal(t, BrokenRoute, result.Status)
	assert.Contains(t, result.Message, "missing raceway ID 'R-78'")

	result = CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: "A", To: "Z", RacewayRouting: "R-1,R-77"}, idx)
	assert.Equal(t, BrokenRoute, result.Status)
	assert.Equal(t, "R-77", result.OffendingRacewayB)
}

func TestCheckDeclaredRoute_OffNetwork(t *testing.T) {
	g, idx := network(rw("R-1", "A", "B"))

	tray := CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: "A", To: "B", RacewayRouting: "ECT-1"}, idx)
	assert.Equal(t, BrokenRoute, tray.Status)
	assert.True(t, tray.OffNetwork)

	unrouted := CheckDeclaredRoute(g, records.Cable{ID: "C-2", From: "A", To: "B", RacewayRouting: "-"}, idx)
	assert.Equal(t, BrokenRoute, unrouted.Status)
	assert.Equal(t, "-", unrouted.OffendingRacewayA)
	assert.True(t, unrouted.OffNetwork)

	missing := CheckDeclaredRoute(g, records.Cable{ID: "C-3", From: "A", To: "B", RacewayRouting: "R-9"}, idx)
	assert.Equal(t, BrokenRoute, missing.Status)
	assert.False(t, missing.OffNetwork)
}

func TestCheckDeclaredRoute_DoesNotMutateInput(t *testing.T) {
	g, idx := network(rw("R-1", "A", "B"), rw("R-2", "B", "C"))
	cable := records.Cable{ID: "C-1", From: "A", To: "C", RacewayRouting: "R-2,R-1"}

	CheckDeclaredRoute(g, cable, idx)
	assert.Equal(t, "R-2,R-1", cable.RacewayRouting)
}

// TestDeclaredRouteReversalInvariance checks that any chain declared forward or backward is Valid
func TestDeclaredRouteReversalInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("forward and reversed chains are both valid", prop.ForAll(
		func(length int) bool {
			raceways := make([]records.Raceway, length)
			forward := ""
			backward := ""
			for i := 0; i < length; i++ {
				id := fmt.Sprintf("R-%d", i+1)
				raceways[i] = rw(id, fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
				if i > 0 {
					forward += ","
					backward = "," + backward
				}
				forward += id
				backward = id + backward
			}
			g, idx := network(raceways...)

			from, to := "N0", fmt.Sprintf("N%d", length)
			f := CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: from, To: to, RacewayRouting: forward}, idx)
			b := CheckDeclaredRoute(g, records.Cable{ID: "C-1", From: from, To: to, RacewayRouting: backward}, idx)
			return f.Status == Valid && b.Status == Valid
		},
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}

func TestTryFindPath_Shortest(t *testing.T) {
	g, _ := network(
		rw("R-1", "A", "B"),
		rw("R-2", "B", "C"),
		rw("R-3", "C", "D"),
		rw("R-4", "A", "D"),
	)

	found, path, reason := TryFindPath(g, " A", "D ", records.Cable{}, nil)
	require.True(t, found)
	assert.Equal(t, []string{"A", "D"}, path)
	assert.Empty(t, reason)
}

func TestTryFindPath_SameNode(t *testing.T) {
	g, _ := network(rw("R-1", "A", "B"))

	found, path, _ := TryFindPath(g, "A", "A", records.Cable{}, nil)
	require.True(t, found)
	assert.Equal(t, []string{"A"}, path)
}

func TestTryFindPath_MissingEndpoint(t *testing.T) {
	g, _ := network(rw("R-1", "A", "B"))

	rejectAll := constraints.Func{Fn: func(records.Cable, *topology.Edge) (bool, string) {
		return false, "never"
	}}
	found, path, reason := TryFindPath(g, "A", "Z", records.Cable{}, rejectAll)
	assert.False(t, found)
	assert.Nil(t, path)
	assert.Empty(t, reason, "missing endpoint must fail before any constraint runs")
}

func TestTryFindPath_Disconnected(t *testing.T) {
	g, _ := network(rw("R-1", "A", "B"), rw("R-2", "C", "D"))

	found, _, reason := TryFindPath(g, "A", "D", records.Cable{}, nil)
	assert.False(t, found)
	assert.Empty(t, reason)
}

func TestTryFindPath_ConstraintDetour(t *testing.T) {
	// A-B direct via R-1 (rejected) or A-C-B via R-2, R-3
	g, _ := network(
		rw("R-1", "A", "B"),
		rw("R-2", "A", "C"),
		rw("R-3", "C", "B"),
	)
	noR1 := constraints.Func{Fn: func(_ records.Cable, e *topology.Edge) (bool, string) {
		if e.RacewayID == "R-1" {
			return false, "R-1 is full"
		}
		return true, ""
	}}

	found, path, reason := TryFindPath(g, "A", "B", records.Cable{ID: "C-1"}, noR1)
	require.True(t, found)
	assert.Equal(t, []string{"A", "C", "B"}, path)
	assert.Equal(t, "R-1 is full", reason)
}

func TestTryFindPath_LastRejectionWins(t *testing.T) {
	g, _ := network(
		rw("R-1", "A", "B"),
		rw("R-2", "A", "C"),
		rw("R-3", "C", "D"),
	)
	byID := constraints.Func{Fn: func(_ records.Cable, e *topology.Edge) (bool, string) {
		switch e.RacewayID {
		case "R-1":
			return false, "reason R-1"
		case "R-3":
			return false, "reason R-3"
		}
		return true, ""
	}}

	found, _, reason := TryFindPath(g, "A", "B", records.Cable{}, byID)
	assert.False(t, found)
	assert.Equal(t, "reason R-3", reason)
}

func TestCheck(t *testing.T) {
	g, idx := network(
		rw("R-1", "A", "B"),
		rw("R-2", "B", "C"),
		rw("R-3", "X", "Y"),
	)
	rejectAll := constraints.Func{Fn: func(records.Cable, *topology.Edge) (bool, string) {
		return false, "segregation"
	}}

	valid := Check(g, records.Cable{ID: "C-1", From: "A", To: "C", RacewayRouting: "R-1,R-2"}, idx, constraints.NewComposite())
	assert.Equal(t, Valid, valid.Status)
	assert.Equal(t, []string{"A", "B", "C"}, valid.PathNodes)
	assert.True(t, valid.OK())

	broken := Check(g, records.Cable{ID: "C-2", From: "A", To: "C", RacewayRouting: "R-99"}, idx, nil)
	assert.Equal(t, BrokenRoute, broken.Status)
	assert.Nil(t, broken.PathNodes)

	unreachable := Check(g, records.Cable{ID: "C-3", From: "A", To: "Y"}, idx, nil)
	assert.Equal(t, NotReachable, unreachable.Status)

	violates := Check(g, records.Cable{ID: "C-4", From: "A", To: "C"}, idx, rejectAll)
	assert.Equal(t, ViolatesConstraints, violates.Status)
	assert.Equal(t, "segregation", violates.ConstraintReason)
}

func TestRouteStatusString(t *testing.T) {
	assert.Equal(t, "Valid", Valid.String())
	assert.Equal(t, "BrokenRoute", BrokenRoute.String())
	assert.Equal(t, "NotReachable", NotReachable.String())
	assert.Equal(t, "ViolatesConstraints", ViolatesConstraints.String())
	assert.Equal(t, "Unknown", RouteStatus(42).String())
}
