package constraints

import (
	"strings"

	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// Composite evaluates an ordered list of constraints with AND semantics.
// Evaluation stops at the first rejection and that rejection's reason is returned.
// A nil *Composite behaves like an empty one and allows every edge.
type Composite struct {
	constraints []PathConstraint
}

// NewComposite creates a composite over the given constraints, in order
func NewComposite(constraints ...PathConstraint) *Composite {
	c := &Composite{
		constraints: make([]PathConstraint, 0, len(constraints)),
	}
	c.AddConstraints(constraints)
	return c
}

// AddConstraint appends a constraint. Nil constraints are ignored.
// Not safe to call once the composite is shared with running searches.
func (c *Composite) AddConstraint(constraint PathConstraint) {
	if constraint == nil {
		return
	}
	c.constraints = append(c.constraints, constraint)
}

// AddConstraints appends multiple constraints
func (c *Composite) AddConstraints(constraints []PathConstraint) {
	for _, constraint := range constraints {
		c.AddConstraint(constraint)
	}
}

// Allows runs each constraint in order and short-circuits on the first rejection
func (c *Composite) Allows(cable records.Cable, edge *topology.Edge) (bool, string) {
	if c == nil {
		return true, ""
	}
	for _, constraint := range c.constraints {
		if ok, reason := constraint.Allows(cable, edge); !ok {
			return false, reason
		}
	}
	return true, ""
}

// Name lists the member constraint names
func (c *Composite) Name() string {
	if c == nil {
		return "Composite()"
	}
	names := make([]string, len(c.constraints))
	for i, constraint := range c.constraints {
		names[i] = constraint.Name()
	}
	return "Composite(" + strings.Join(names, ",") + ")"
}

// GetConstraints returns all constraints in the composite
func (c *Composite) GetConstraints() []PathConstraint {
	if c == nil {
		return nil
	}
	out := make([]PathConstraint, len(c.constraints))
	copy(out, c.constraints)
	return out
}

// Len returns the number of member constraints
func (c *Composite) Len() int {
	if c == nil {
		return 0
	}
	return len(c.constraints)
}
