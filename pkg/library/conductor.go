// Package library holds the static conductor diameter and conduit trade-size
// tables used by raceway sizing. Tables are built once and never mutated.
package library

import "strings"

// Family identifies a conductor diameter table
type Family string

const (
	FamilyTHHN   Family = "THHN"
	FamilyXHHW   Family = "XHHW"
	FamilyTCER   Family = "TCER"
	FamilyBELDEN Family = "BELDEN"
)

// beldenMarker selects the BELDEN table when present in a cable's type or size
const beldenMarker = "BELDEN"

// ConductorLibrary maps (family, size label) to outer diameter in inches
type ConductorLibrary struct {
	tables map[Family]map[string]float64
}

// NewConductorLibrary returns the built-in conductor tables with any extra
// entries layered on top
func NewConductorLibrary(extra map[Family]map[string]float64) *ConductorLibrary {
	tables := make(map[Family]map[string]float64, len(defaultConductors))
	for family, sizes := range defaultConductors {
		tables[family] = copySizes(sizes)
	}
	for family, sizes := range extra {
		if tables[family] == nil {
			tables[family] = make(map[string]float64, len(sizes))
		}
		for size, diameter := range sizes {
			tables[family][size] = diameter
		}
	}
	return &ConductorLibrary{tables: tables}
}

// Diameter returns the outer diameter for a size label within a family
func (l *ConductorLibrary) Diameter(family Family, size string) (float64, bool) {
	table, ok := l.tables[family]
	if !ok {
		return 0, false
	}
	d, ok := table[size]
	return d, ok
}

// Families returns the number of loaded tables
func (l *ConductorLibrary) Families() int {
	return len(l.tables)
}

// FamilyFor maps a cable type label to its diameter table. The BELDEN marker
// is checked last and may come from either the type or the size label.
// CableDiameter also consults BELDEN when a known family lacks the size.
func FamilyFor(cableType, size string) (Family, bool) {
	switch cableType {
	case "XHHW", "XHHW-2":
		return FamilyXHHW, true
	case "THWN", "THHN", "THWN-2":
		return FamilyTHHN, true
	case "TC-ER", "TCER", "OSP":
		return FamilyTCER, true
	}
	if hasBeldenMarker(cableType, size) {
		return FamilyBELDEN, true
	}
	return "", false
}

// CableDiameter resolves the outer diameter of a cable from its type and size.
// A size missing from the family table falls back to the BELDEN table when
// either label carries the marker. Unresolvable pairs return 0.
func (l *ConductorLibrary) CableDiameter(cableType, size string) float64 {
	if family, ok := FamilyFor(cableType, size); ok {
		if d, ok := l.Diameter(family, size); ok {
			return d
		}
	}
	if hasBeldenMarker(cableType, size) {
		if d, ok := l.Diameter(FamilyBELDEN, size); ok {
			return d
		}
	}
	return 0
}

func hasBeldenMarker(cableType, size string) bool {
	return strings.Contains(cableType, beldenMarker) || strings.Contains(size, beldenMarker)
}

func copySizes(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var defaultConductors = map[Family]map[string]float64{
	FamilyBELDEN: {
		"BELDEN 8441":  0.194,
		"BELDEN 88760": 0.148,
		"BELDEN 8443":  0.172,
	},
	FamilyTHHN: {
		"#14":        0.111,
		"#12":        0.130,
		"#10":        0.164,
		"#8":         0.216,
		"#6":         0.254,
		"#4":         0.324,
		"#3":         0.352,
		"#2":         0.384,
		"#1":         0.446,
		"#1/0":       0.486,
		"#2/0":       0.532,
		"#3/0":       0.584,
		"#4/0":       0.642,
		"#250 KCMIL": 0.711,
		"#300 KCMIL": 0.766,
		"#350 KCMIL": 0.817,
		"#400 KCMIL": 0.864,
		"#500 KCMIL": 0.949,
		"#600 KCMIL": 1.051,
		"#700 KCMIL": 1.122,
	},
	FamilyXHHW: {
		"#14":        0.140,
		"#12":        0.152,
		"#10":        0.176,
		"#8":         0.236,
		"#6":         0.274,
		"#4":         0.322,
		"#3":         0.350,
		"#2":         0.382,
		"#1":         0.442,
		"#1/0":       0.482,
		"#2/0":       0.528,
		"#3/0":       0.580,
		"#4/0":       0.638,
		"#250 KCMIL": 0.705,
		"#300 KCMIL": 0.760,
		"#350 KCMIL": 0.811,
		"#400 KCMIL": 0.858,
		"#500 KCMIL": 0.943,
		"#600 KCMIL": 1.053,
		"#700 KCMIL": 1.124,
	},
	FamilyTCER: {
		"4/C #16 TSP":   0.52,
		"2/C #16 TSP":   0.35,
		"2/C #14":       0.39,
		"3/C #14":       0.41,
		"4/C #14":       0.44,
		"5/C #14":       0.48,
		"7/C #14":       0.52,
		"9/C #14":       0.64,
		"12/C #14":      0.71,
		"19/C #14":      0.83,
		"37/C #14":      1.14,
		"2/C #12":       0.42,
		"3/C #12":       0.45,
		"4/C #12":       0.49,
		"5/C #12":       0.53,
		"7/C #12":       0.61,
		"9/C #12":       0.70,
		"12/C #12":      0.79,
		"19/C #12":      0.96,
		"37/C #12":      1.27,
		"2/C #10":       0.47,
		"3/C #10":       0.50,
		"4/C #10":       0.58,
		"5/C #10":       0.63,
		"7/C #10":       0.68,
		"9/C #10":       0.79,
		"12/C #10":      0.93,
		"3/C #8":        0.68,
		"4/C #8":        0.71,
		"3/C #6":        0.73,
		"4/C #6":        0.82,
		"3/C #4":        0.82,
		"4/C #4":        0.95,
		"3/C #2":        0.98,
		"4/C #2":        1.08,
		"3/C #1":        1.09,
		"4/C #1":        1.21,
		"3/C #1/0":      1.17,
		"4/C #1/0":      1.29,
		"3/C #2/0":      1.26,
		"4/C #2/0":      1.39,
		"3/C #4/0":      1.49,
		"4/C #4/0":      1.63,
		"3/C 250 KCMIL": 1.62,
		"4/C 250 KCMIL": 1.86,
		"3/C 350 KCMIL": 1.89,
		"4/C 350 KCMIL": 2.08,
		"3/C 500 KCMIL": 2.14,
		"4/C 500 KCMIL": 2.37,
		"3/C 750 KCMIL": 2.57,
		"4/C 750 KCMIL": 2.91,
	},
}
