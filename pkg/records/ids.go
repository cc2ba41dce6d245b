package records

import (
	"regexp"
	"strings"
)

// ID kinds accepted by MatchesID
const (
	KindCable    = "cable"
	KindRaceway  = "raceway"
	KindDuctbank = "ductbank"
	KindTray     = "tray"
)

// Row ID patterns used by the schedule extractor
var (
	CablePattern    = regexp.MustCompile(`(?i)^C-\d{1,4}$`)
	RacewayPattern  = regexp.MustCompile(`(?i)^R-\d{1,4}$`)
	DuctbankPattern = regexp.MustCompile(`(?i)^EDB-\d{1,4}$`)
	TrayPattern     = regexp.MustCompile(`(?i)^ECT-\d{1,4}$`)
)

// MatchesID reports whether id is a well-formed ID of the given kind.
// Unknown kinds never match.
func MatchesID(kind, id string) bool {
	id = strings.TrimSpace(id)
	switch kind {
	case KindCable:
		return CablePattern.MatchString(id)
	case KindRaceway:
		return RacewayPattern.MatchString(id)
	case KindDuctbank:
		return DuctbankPattern.MatchString(id)
	case KindTray:
		return TrayPattern.MatchString(id)
	default:
		return false
	}
}
