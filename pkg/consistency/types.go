// Package consistency cross-checks the containment hierarchies (cable in
// raceway, raceway in ductbank, cable in tray) for mutual references.
//
// All matching here is case-insensitive substring containment, looser than the
// exact token matching used by route validation.
package consistency

// Audit names a containment cross-check
type Audit string

const (
	AuditCableRaceway    Audit = "cable_raceway"
	AuditRacewayDuctbank Audit = "raceway_ductbank"
	AuditCableTray       Audit = "cable_tray"
)

// Kind categorizes a discrepancy
type Kind int

const (
	MissingBackReference Kind = iota // child does not point back at its container
	NoRaceway                        // cable routing names no raceway at all
	MissingRecord                    // container lists an ID with no record
)

func (k Kind) String() string {
	switch k {
	case MissingBackReference:
		return "MissingBackReference"
	case NoRaceway:
		return "NoRaceway"
	case MissingRecord:
		return "MissingRecord"
	default:
		return "Unknown"
	}
}

// Discrepancy is one cross-reference finding
type Discrepancy struct {
	Kind      Kind
	SubjectID string // record the finding is about
	RelatedID string // record it should have matched, if any
	Message   string
}

// Report is the ordered output of one audit. An empty report means no discrepancies.
type Report struct {
	Audit         Audit
	Discrepancies []Discrepancy
}

func newReport(audit Audit) *Report {
	return &Report{
		Audit:         audit,
		Discrepancies: make([]Discrepancy, 0),
	}
}

func (r *Report) add(kind Kind, subject, related, message string) {
	r.Discrepancies = append(r.Discrepancies, Discrepancy{
		Kind:      kind,
		SubjectID: subject,
		RelatedID: related,
		Message:   message,
	})
}

// Empty reports whether the audit found nothing
func (r *Report) Empty() bool {
	return len(r.Discrepancies) == 0
}

// Messages returns the discrepancy text in order
func (r *Report) Messages() []string {
	out := make([]string, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		out[i] = d.Message
	}
	return out
}

// GetDiscrepanciesByKind returns discrepancies filtered by kind
func (r *Report) GetDiscrepanciesByKind(kind Kind) []Discrepancy {
	filtered := make([]Discrepancy, 0)
	for _, d := range r.Discrepancies {
		if d.Kind == kind {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
