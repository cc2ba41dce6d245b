// Package sizing selects a conduit trade size for a raceway from the physical
// fill of the cables it carries.
package sizing

import (
	"strconv"

	"github.com/dd0wney/cluso-raceway/pkg/library"
	"github.com/dd0wney/cluso-raceway/pkg/records"
)

// ErrorLabel is returned in place of a trade size when none can be selected
const ErrorLabel = "Error"

// circleFactor converts a squared diameter to a cross-sectional area (pi/4)
const circleFactor = 0.7854

// Occupancy limits by total conductor count
const (
	LimitOneCable  = 0.53
	LimitTwoCables = 0.31
	LimitMany      = 0.40
)

// Sizing is the full breakdown behind a raceway's size label
type Sizing struct {
	RacewayID  string
	FillArea   float64 // square inches
	CableCount int
	Limit      float64
	Ratio      float64 // fill ratio against the selected size, 0 when none selected
	Label      string

	// Fill tokens excluded from the sum, by cause
	UnknownCables      []string
	UnresolvedDiameter []string
	BadQuantity        []string
}

// OK reports whether a trade size was selected
func (s Sizing) OK() bool {
	return s.Label != ErrorLabel
}

// SizeRaceway returns the smallest trade size whose fill ratio is under the
// occupancy limit, or ErrorLabel
func SizeRaceway(raceway records.Raceway, cables records.CableIndex, conductors *library.ConductorLibrary, conduits *library.ConduitLibrary) string {
	return Calculate(raceway, cables, conductors, conduits).Label
}

// Calculate sizes a raceway and reports what was counted. Fill tokens naming
// unknown cables, cables with no known diameter and cables with an unparsable
// quantity are left out of the sum.
func Calculate(raceway records.Raceway, cables records.CableIndex, conductors *library.ConductorLibrary, conduits *library.ConduitLibrary) Sizing {
	s := Sizing{RacewayID: raceway.ID, Label: ErrorLabel}

	for _, token := range records.SplitFill(raceway.CableFill) {
		cable, ok := cables.Lookup(token)
		if !ok {
			s.UnknownCables = append(s.UnknownCables, token)
			continue
		}

		diameter := conductors.CableDiameter(cable.Type, cable.Size)
		if diameter <= 0 {
			s.UnresolvedDiameter = append(s.UnresolvedDiameter, token)
			continue
		}

		qty, err := strconv.Atoi(records.Trim(cable.Quantity))
		if err != nil {
			s.BadQuantity = append(s.BadQuantity, token)
			continue
		}

		s.FillArea += diameter * diameter * circleFactor * float64(qty)
		s.CableCount += qty
	}

	if s.CableCount == 0 {
		return s
	}

	s.Limit = OccupancyLimit(s.CableCount)
	for _, size := range conduits.Sizes() {
		ratio := s.FillArea / size.Area
		if ratio < s.Limit {
			s.Ratio = ratio
			s.Label = size.Label
			return s
		}
	}
	return s
}

// OccupancyLimit returns the maximum fill fraction for a conductor count
func OccupancyLimit(count int) float64 {
	switch count {
	case 1:
		return LimitOneCable
	case 2:
		return LimitTwoCables
	default:
		return LimitMany
	}
}
