package constraints

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConstraint is returned for a constraint name with no registered rule
var ErrUnknownConstraint = errors.New("unknown constraint")

// Names accepted by FromNames
const (
	NameSignalType      = "signal_type"
	NameFillCapacity    = "fill_capacity"
	NameZoneSegregation = "zone_segregation"
)

var registry = map[string]func() PathConstraint{
	NameSignalType:      func() PathConstraint { return SignalTypeConstraint{} },
	NameFillCapacity:    func() PathConstraint { return FillCapacityConstraint{} },
	NameZoneSegregation: func() PathConstraint { return ZoneSegregationConstraint{} },
}

// KnownNames returns the registered constraint names
func KnownNames() []string {
	return []string{NameSignalType, NameFillCapacity, NameZoneSegregation}
}

// FromNames builds a composite from configuration names, preserving order.
// Names are matched case-insensitively.
func FromNames(names []string) (*Composite, error) {
	c := NewComposite()
	for _, name := range names {
		factory, ok := registry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConstraint, name)
		}
		c.AddConstraint(factory())
	}
	return c, nil
}
