// Package snapshot loads a project's cable, raceway, ductbank and tray
// schedules from a YAML document and drops rows whose IDs are malformed.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/trace"
	"github.com/dd0wney/cluso-raceway/pkg/validation"
)

// Snapshot is one project's schedules:
//
//	cables:
//	  - id: C-1
//	    from: MCC-1
//	    to: PMP-1
//	    raceway_routing: R-1, R-2
//	raceways:
//	  - id: R-1
//	    from: MCC-1
//	    to: HH-1
//	    cable_fill: C-1
//	ductbanks:
//	  - id: EDB-1
//	    raceways: [R-1]
//	trays:
//	  - id: ECT-1
//	    cables: [C-7]
type Snapshot struct {
	Cables    []records.Cable     `yaml:"cables"`
	Raceways  []records.Raceway   `yaml:"raceways"`
	Ductbanks []records.Ductbank  `yaml:"ductbanks"`
	Trays     []records.CableTray `yaml:"trays"`

	// Rejected lists rows and member IDs dropped while loading
	Rejected []Rejected `yaml:"-"`
}

// Rejected describes one dropped row or containment member.
type Rejected struct {
	Section string // cables, raceways, ductbanks or trays
	Row     int    // zero-based row within the section
	ID      string
	Reason  string
}

func (r Rejected) String() string {
	return fmt.Sprintf("%s[%d] %q: %s", r.Section, r.Row, r.ID, r.Reason)
}

// Parse decodes a snapshot document and filters it.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	s.filter()
	return &s, nil
}

// LoadFile reads and parses the snapshot at path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return Parse(data)
}

// Input hands the filtered records to a validation run.
func (s *Snapshot) Input() trace.Input {
	return trace.Input{
		Cables:    s.Cables,
		Raceways:  s.Raceways,
		Ductbanks: s.Ductbanks,
		Trays:     s.Trays,
	}
}

func (s *Snapshot) filter() {
	s.Cables = keepValid(s, "cables", s.Cables, func(c records.Cable) string { return c.ID })
	s.Raceways = keepValid(s, "raceways", s.Raceways, func(r records.Raceway) string { return r.ID })
	s.Ductbanks = keepValid(s, "ductbanks", s.Ductbanks, func(d records.Ductbank) string { return d.ID })
	s.Trays = keepValid(s, "trays", s.Trays, func(t records.CableTray) string { return t.ID })

	for i := range s.Ductbanks {
		s.Ductbanks[i].Raceways = s.keepMembers("ductbanks", i, records.KindRaceway, s.Ductbanks[i].Raceways)
	}
	for i := range s.Trays {
		s.Trays[i].Cables = s.keepMembers("trays", i, records.KindCable, s.Trays[i].Cables)
	}
}

func keepValid[T any](s *Snapshot, section string, rows []T, id func(T) string) []T {
	kept := make([]T, 0, len(rows))
	for i, row := range rows {
		if err := validation.ValidateRecord(row); err != nil {
			s.Rejected = append(s.Rejected, Rejected{Section: section, Row: i, ID: id(row), Reason: err.Error()})
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func (s *Snapshot) keepMembers(section string, row int, kind string, ids []string) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		id = records.Trim(id)
		if id == "" {
			continue
		}
		if !records.MatchesID(kind, id) {
			s.Rejected = append(s.Rejected, Rejected{Section: section, Row: row, ID: id, Reason: "not a valid " + kind + " ID"})
			continue
		}
		kept = append(kept, id)
	}
	return kept
}
