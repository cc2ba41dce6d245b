package consistency

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-raceway/pkg/records"
)

// CheckCableRaceway checks that every raceway named in a cable's routing lists
// that cable in its fill. Cables whose routing names no raceway are reported
// unless they are tray-routed or marked "-".
func CheckCableRaceway(cables []records.Cable, raceways []records.Raceway) *Report {
	report := newReport(AuditCableRaceway)

	for _, cable := range cables {
		matched := false
		for _, raceway := range raceways {
			if raceway.ID == "" || !records.ContainsFold(cable.RacewayRouting, raceway.ID) {
				continue
			}
			matched = true

			if !records.ContainsFold(raceway.CableFill, cable.ID) {
				report.add(MissingBackReference, cable.ID, raceway.ID,
					fmt.Sprintf("Cable %s is routed through raceway %s, but %s cable fill does not include %s.",
						cable.ID, raceway.ID, raceway.ID, cable.ID))
			}
		}

		if matched || records.OffRacewayNetwork(cable.RacewayRouting) {
			continue
		}
		report.add(NoRaceway, cable.ID, "",
			fmt.Sprintf("Cable %s has no corresponding raceway routing.", cable.ID))
	}

	return report
}

// CheckRacewayDuctbank checks that every raceway a ductbank contains exists and
// names the ductbank in its ductbank routing
func CheckRacewayDuctbank(raceways []records.Raceway, ductbanks []records.Ductbank) *Report {
	report := newReport(AuditRacewayDuctbank)

	for _, ductbank := range ductbanks {
		for _, id := range ductbank.Raceways {
			id = records.Trim(id)
			if id == "" {
				continue
			}

			raceway, ok := findRaceway(raceways, id)
			if !ok {
				report.add(MissingRecord, id, ductbank.ID,
					fmt.Sprintf("Ductbank %s lists raceway %s, which does not exist.", ductbank.ID, id))
				continue
			}

			if !records.ContainsFold(raceway.DuctbankRouting, ductbank.ID) {
				report.add(MissingBackReference, raceway.ID, ductbank.ID,
					fmt.Sprintf("Raceway %s is in ductbank %s, but its ductbank routing does not reference %s.",
						raceway.ID, ductbank.ID, ductbank.ID))
			}
		}
	}

	return report
}

// CheckCableTray checks that every cable a tray contains exists and names the
// tray in its raceway routing
func CheckCableTray(cables []records.Cable, trays []records.CableTray) *Report {
	report := newReport(AuditCableTray)

	for _, tray := range trays {
		for _, id := range tray.Cables {
			id = records.Trim(id)
			if id == "" {
				continue
			}

			cable, ok := findCable(cables, id)
			if !ok {
				report.add(MissingRecord, id, tray.ID,
					fmt.Sprintf("Cable tray %s lists cable %s, which does not exist.", tray.ID, id))
				continue
			}

			if !records.ContainsFold(cable.RacewayRouting, tray.ID) {
				report.add(MissingBackReference, cable.ID, tray.ID,
					fmt.Sprintf("Cable %s is in cable tray %s, but its raceway routing does not reference %s.",
						cable.ID, tray.ID, tray.ID))
			}
		}
	}

	return report
}

func findRaceway(raceways []records.Raceway, id string) (records.Raceway, bool) {
	for _, r := range raceways {
		if strings.EqualFold(records.Trim(r.ID), id) {
			return r, true
		}
	}
	return records.Raceway{}, false
}

func findCable(cables []records.Cable, id string) (records.Cable, bool) {
	for _, c := range cables {
		if strings.EqualFold(records.Trim(c.ID), id) {
			return c, true
		}
	}
	return records.Cable{}, false
}
