// Package records holds the flat cable, raceway, ductbank and tray records that
// the validation engine consumes. Records are immutable snapshots: every field is
// the text as it appeared in the source schedule.
package records

// Cable is one row of the cable schedule
type Cable struct {
	ID             string `yaml:"id" validate:"required,idpattern=cable"`
	Description    string `yaml:"description"`
	From           string `yaml:"from"`
	To             string `yaml:"to"`
	Quantity       string `yaml:"quantity"`
	Size           string `yaml:"size"`
	Type           string `yaml:"type"`
	Ground         string `yaml:"ground"`
	RacewayRouting string `yaml:"raceway_routing"`
	SignalType     string `yaml:"signal_type"`
}

// Raceway is one conduit or tray segment connecting two locations
type Raceway struct {
	ID              string `yaml:"id" validate:"required,idpattern=raceway"`
	Size            string `yaml:"size"`
	From            string `yaml:"from"`
	To              string `yaml:"to"`
	CircuitType     string `yaml:"circuit_type"`
	CableFill       string `yaml:"cable_fill"`
	DuctbankRouting string `yaml:"ductbank_routing"`
}

// Ductbank groups raceways routed together underground
type Ductbank struct {
	ID       string   `yaml:"id" validate:"required,idpattern=ductbank"`
	Raceways []string `yaml:"raceways"`
}

// CableTray groups cables routed together above grade
type CableTray struct {
	ID     string   `yaml:"id" validate:"required,idpattern=tray"`
	Cables []string `yaml:"cables"`
}

// Endpoints returns the raceway's From and To labels trimmed of surrounding
// whitespace. No other normalization is applied.
func (r Raceway) Endpoints() (string, string) {
	return Trim(r.From), Trim(r.To)
}

// Touches reports whether node equals either trimmed endpoint of the raceway
func (r Raceway) Touches(node string) bool {
	from, to := r.Endpoints()
	return node == from || node == to
}

// CommonEndpoint returns the endpoint shared by two raceways, if any
func CommonEndpoint(a, b Raceway) (string, bool) {
	a1, a2 := a.Endpoints()
	b1, b2 := b.Endpoints()

	if a1 == b1 || a1 == b2 {
		return a1, true
	}
	if a2 == b1 || a2 == b2 {
		return a2, true
	}
	return "", false
}
