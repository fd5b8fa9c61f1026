package formula

import (
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
)

// Catalog is an immutable, ordered collection of formula definitions grouped
// by category. It is safe for concurrent reads.
type Catalog struct {
	categories []string
	byCategory map[string][]*Definition
	byID       map[string]*Definition
	all        []*Definition
}

// NewCatalog validates the definitions and indexes them. Categories and
// formulas keep the order in which they are first declared.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[string][]*Definition),
		byID:       make(map[string]*Definition, len(defs)),
		all:        make([]*Definition, 0, len(defs)),
	}
	for _, d := range defs {
		if d == nil {
			return nil, eris.New("formula: nil definition")
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.Category == "" {
			return nil, eris.Errorf("formula: %s has no category", d.ID)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, eris.Errorf("formula: duplicate formula id %q", d.ID)
		}
		if _, ok := c.byCategory[d.Category]; !ok {
			c.categories = append(c.categories, d.Category)
		}
		c.byCategory[d.Category] = append(c.byCategory[d.Category], d)
		c.byID[d.ID] = d
		c.all = append(c.all, d)
	}
	return c, nil
}

// Categories returns the category names in declaration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Formulas returns the formulas of a category in declaration order.
func (c *Catalog) Formulas(category string) ([]*Definition, error) {
	defs, ok := c.byCategory[category]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownCategory, "category %q", category)
	}
	out := make([]*Definition, len(defs))
	copy(out, defs)
	return out, nil
}

// Formula returns the formula with the given id.
func (c *Catalog) Formula(id string) (*Definition, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownFormula, "formula %q", id)
	}
	return d, nil
}

// All returns every formula, category by category, in declaration order.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, len(c.all))
	copy(out, c.all)
	return out
}

// Len returns the number of formulas.
func (c *Catalog) Len() int {
	return len(c.all)
}

// Default returns the first formula of the first category, or nil when the
// catalog is empty.
func (c *Catalog) Default() *Definition {
	if len(c.all) == 0 {
		return nil
	}
	return c.all[0]
}

// Search returns formulas whose name or category contains term, ignoring
// case. An empty term matches everything.
func (c *Catalog) Search(term string) []*Definition {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return c.All()
	}

	var out []*Definition
	for _, d := range c.all {
		if strings.Contains(fold.String(d.Name), needle) || strings.Contains(fold.String(d.Category), needle) {
			out = append(out, d)
		}
	}
	return out
}

var (
	builtin     *Catalog
	builtinOnce sync.Once
)

// Builtin returns the process-wide catalog of built-in formulas. It panics
// if a built-in definition is inconsistent, which is a programming error.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := NewCatalog(builtinDefinitions()...)
		if err != nil {
			panic(err)
		}
		builtin = c
	})
	return builtin
}

func builtinDefinitions() []*Definition {
	var defs []*Definition
	defs = append(defs, basicDefinitions()...)
	defs = append(defs, ratioDefinitions()...)
	defs = append(defs, sensitivityDefinitions()...)
	defs = append(defs, allocationDefinitions()...)
	defs = append(defs, pricingDefinitions()...)
	defs = append(defs, projectDefinitions()...)
	return defs
}
