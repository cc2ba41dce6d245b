package library

import "sort"

// TradeSize is a nominal conduit size with its usable internal area in square inches
type TradeSize struct {
	Label string  `yaml:"label"`
	Area  float64 `yaml:"area"`
}

// ConduitLibrary is an ordered trade-size table, smallest first
type ConduitLibrary struct {
	sizes []TradeSize
}

// NewConduitLibrary returns the HDPE trade-size table. A non-empty sizes slice
// replaces the built-in table.
func NewConduitLibrary(sizes []TradeSize) *ConduitLibrary {
	src := defaultHDPE
	if len(sizes) > 0 {
		src = sizes
	}

	ordered := make([]TradeSize, len(src))
	copy(ordered, src)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area < ordered[j].Area
	})
	return &ConduitLibrary{sizes: ordered}
}

// Sizes returns a copy of the trade sizes in ascending order
func (l *ConduitLibrary) Sizes() []TradeSize {
	out := make([]TradeSize, len(l.sizes))
	copy(out, l.sizes)
	return out
}

// Area returns the internal area of a trade size label
func (l *ConduitLibrary) Area(label string) (float64, bool) {
	for _, s := range l.sizes {
		if s.Label == label {
			return s.Area, true
		}
	}
	return 0, false
}

var defaultHDPE = []TradeSize{
	{Label: `3/4"`, Area: 0.508},
	{Label: `1"`, Area: 0.832},
	{Label: `1 1/4"`, Area: 1.453},
	{Label: `1 1/2"`, Area: 1.986},
	{Label: `2"`, Area: 3.291},
	{Label: `2 1/2"`, Area: 4.695},
	{Label: `3"`, Area: 7.268},
	{Label: `3 1/2"`, Area: 9.737},
	{Label: `4"`, Area: 12.554},
	{Label: `5"`, Area: 19.761},
	{Label: `6"`, Area: 28.567},
}
