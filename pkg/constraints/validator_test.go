package constraints

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

func reject(label, reason string, calls *int) PathConstraint {
	return Func{Label: label, Fn: func(records.Cable, *topology.Edge) (bool, string) {
		*calls++
		return false, reason
	}}
}

func allow(calls *int) PathConstraint {
	return Func{Fn: func(records.Cable, *topology.Edge) (bool, string) {
		*calls++
		return true, ""
	}}
}

// TestComposite_Empty tests that an empty composite allows everything
func TestComposite_Empty(t *testing.T) {
	ok, reason := NewComposite().Allows(records.Cable{}, &topology.Edge{})
	if !ok || reason != "" {
		t.Errorf("Expected empty composite to allow, got %v %q", ok, reason)
	}
}

// TestComposite_NilReceiver tests that a nil composite acts as an empty one
func TestComposite_NilReceiver(t *testing.T) {
	var c *Composite

	ok, reason := c.Allows(records.Cable{ID: "C-1"}, &topology.Edge{RacewayID: "R-1"})
	if !ok || reason != "" {
		t.Errorf("Expected nil composite to allow, got %v %q", ok, reason)
	}
	if c.Len() != 0 || c.GetConstraints() != nil {
		t.Error("Expected nil composite to have no members")
	}
	if got := c.Name(); got != "Composite()" {
		t.Errorf("Name() = %q", got)
	}
}

// TestComposite_ShortCircuit tests that evaluation stops at the first rejection
func TestComposite_ShortCircuit(t *testing.T) {
	var first, second, third int
	c := NewComposite(allow(&first), reject("A", "first rejection", &second), reject("B", "second rejection", &third))

	ok, reason := c.Allows(records.Cable{ID: "C-1"}, &topology.Edge{RacewayID: "R-1"})
	if ok {
		t.Fatal("Expected composite to reject")
	}
	if reason != "first rejection" {
		t.Errorf("Expected first rejection's reason, got %q", reason)
	}
	if first != 1 || second != 1 || third != 0 {
		t.Errorf("Unexpected call counts: %d %d %d", first, second, third)
	}
}

// TestComposite_AllAllow tests AND semantics when every member allows
func TestComposite_AllAllow(t *testing.T) {
	var calls int
	c := NewComposite(allow(&calls), allow(&calls), SignalTypeConstraint{})
	c.AddConstraint(nil)

	ok, reason := c.Allows(records.Cable{}, &topology.Edge{})
	if !ok || reason != "" {
		t.Errorf("Expected allow, got %v %q", ok, reason)
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
	if c.Len() != 3 {
		t.Errorf("Expected nil constraint to be ignored, got %d members", c.Len())
	}
}

// TestPlaceholderRules tests that the built-in rules are permissive
func TestPlaceholderRules(t *testing.T) {
	cable := records.Cable{ID: "C-1", SignalType: "ANALOG"}
	edge := &topology.Edge{RacewayID: "R-1", CircuitType: "POWER", ZoneClass: "C1D1"}

	for _, c := range []PathConstraint{SignalTypeConstraint{}, FillCapacityConstraint{}, ZoneSegregationConstraint{}} {
		t.Run(c.Name(), func(t *testing.T) {
			if ok, reason := c.Allows(cable, edge); !ok || reason != "" {
				t.Errorf("%s rejected edge: %q", c.Name(), reason)
			}
		})
	}
}

// TestFromNames tests building a composite from configuration
func TestFromNames(t *testing.T) {
	c, err := FromNames([]string{"Signal_Type", " zone_segregation "})
	if err != nil {
		t.Fatalf("FromNames failed: %v", err)
	}
	if got := c.Name(); got != "Composite(SignalType,ZoneSegregation)" {
		t.Errorf("Unexpected composite name %q", got)
	}

	_, err = FromNames([]string{"voltage_drop"})
	if !errors.Is(err, ErrUnknownConstraint) {
		t.Errorf("Expected ErrUnknownConstraint, got %v", err)
	}
}
