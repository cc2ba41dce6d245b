package library

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned when an override file carries a non-positive dimension
var ErrInvalidEntry = errors.New("invalid library entry")

// Overrides is the YAML shape of a library override file:
//
//	conductors:
//	  THHN:
//	    "#12": 0.130
//	conduits:
//	  - label: 3/4"
//	    area: 0.508
type Overrides struct {
	Conductors map[Family]map[string]float64 `yaml:"conductors"`
	Conduits   []TradeSize                   `yaml:"conduits"`
}

// Parse decodes override YAML and checks every dimension is positive
func Parse(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse library overrides: %w", err)
	}

	for family, sizes := range o.Conductors {
		for size, d := range sizes {
			if d <= 0 {
				return nil, fmt.Errorf("%w: %s %q diameter %v", ErrInvalidEntry, family, size, d)
			}
		}
	}
	for _, ts := range o.Conduits {
		if ts.Label == "" || ts.Area <= 0 {
			return nil, fmt.Errorf("%w: conduit %q area %v", ErrInvalidEntry, ts.Label, ts.Area)
		}
	}
	return &o, nil
}

// LoadFile builds both libraries from the built-in tables plus the overrides in
// path. An empty path yields the built-in tables.
func LoadFile(path string) (*ConductorLibrary, *ConduitLibrary, error) {
	if path == "" {
		return NewConductorLibrary(nil), NewConduitLibrary(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read library file %s: %w", path, err)
	}

	o, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return NewConductorLibrary(o.Conductors), NewConduitLibrary(o.Conduits), nil
}
