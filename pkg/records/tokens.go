package records

import "strings"

// TrayMarker in a cable's raceway routing marks it as tray-routed
const TrayMarker = "ECT"

// NoRouting is the routing placeholder for cables deliberately left unrouted
const NoRouting = "-"

// Trim strips leading and trailing whitespace. It is the only normalization
// applied to endpoint labels and route tokens.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// SplitRouting splits a cable's raceway routing on comma, semicolon and space,
// dropping empty tokens.
func SplitRouting(routing string) []string {
	return splitOn(routing, ",; ")
}

// SplitFill splits a raceway's cable fill on comma and space, dropping empty tokens
func SplitFill(fill string) []string {
	return splitOn(fill, ", ")
}

func splitOn(s, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := Trim(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

// OffRacewayNetwork reports whether a cable routing is tray-routed or
// explicitly unrouted rather than a list of raceways.
func OffRacewayNetwork(routing string) bool {
	return ContainsFold(routing, TrayMarker) || Trim(routing) == NoRouting
}
