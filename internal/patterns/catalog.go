package patterns

import (
	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// Catalog is an ordered, immutable set of patterns addressable by name or index.
type Catalog struct {
	order  []string
	byName map[string]Pattern
}

// NewCatalog builds a catalog preserving the order patterns are given in.
func NewCatalog(ps ...Pattern) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Pattern, len(ps))}
	for _, p := range ps {
		if p.Name == "" || len(p.template) == 0 {
			return nil, errors.New("catalog entries must be built with patterns.New")
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, errors.Errorf("duplicate pattern %q", p.Name)
		}
		c.byName[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	return c, nil
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.order) }

// Names lists pattern names in declaration order.
func (c *Catalog) Names() []string { return append([]string(nil), c.order...) }

// Get looks up a pattern by name.
func (c *Catalog) Get(name string) (Pattern, error) {
	p, ok := c.byName[name]
	if !ok {
		return Pattern{}, errors.Wrapf(core.ErrUnknownPattern, "%q", name)
	}
	return p, nil
}

// At returns the pattern listed at index.
func (c *Catalog) At(index int) (Pattern, error) {
	if index < 0 || index >= len(c.order) {
		return Pattern{}, errors.Wrapf(core.ErrInvalidSelection, "index %d outside [0,%d)", index, len(c.order))
	}
	return c.byName[c.order[index]], nil
}
