package records

import "strings"

// RacewayIndex maps trimmed raceway IDs to records using exact matching.
// The first record wins when an ID is repeated.
type RacewayIndex map[string]Raceway

// IndexRaceways builds an exact-match index over raceways
func IndexRaceways(raceways []Raceway) RacewayIndex {
	idx := make(RacewayIndex, len(raceways))
	for _, r := range raceways {
		id := Trim(r.ID)
		if _, exists := idx[id]; !exists {
			idx[id] = r
		}
	}
	return idx
}

// Lookup resolves a raceway by exact ID
func (idx RacewayIndex) Lookup(id string) (Raceway, bool) {
	r, ok := idx[Trim(id)]
	return r, ok
}

// CableIndex maps cable IDs to records ignoring case.
// The first record wins when an ID is repeated.
type CableIndex map[string]Cable

// IndexCables builds a case-insensitive index over cables
func IndexCables(cables []Cable) CableIndex {
	idx := make(CableIndex, len(cables))
	for _, c := range cables {
		key := foldKey(c.ID)
		if _, exists := idx[key]; !exists {
			idx[key] = c
		}
	}
	return idx
}

// Lookup resolves a cable by ID, ignoring case
func (idx CableIndex) Lookup(id string) (Cable, bool) {
	c, ok := idx[foldKey(id)]
	return c, ok
}

func foldKey(id string) string {
	return strings.ToUpper(Trim(id))
}
