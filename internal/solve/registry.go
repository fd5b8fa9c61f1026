package solve

import "github.com/sells-group/formula-cli/internal/formula"

// Summary describes one formula for selection lists.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Decision    bool   `json:"decision,omitempty"`
	Variables   int    `json:"variables"`
}

// CategorySummary is one category and its formulas in declaration order.
type CategorySummary struct {
	Name     string    `json:"name"`
	Formulas []Summary `json:"formulas"`
}

// Registry is the ordered catalog listing.
type Registry struct {
	Categories []CategorySummary `json:"categories"`
}

// Summarize builds the summary of one definition.
func Summarize(def *formula.Definition) Summary {
	return Summary{
		ID:          def.ID,
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		Decision:    def.IsDecision(),
		Variables:   len(def.Variables),
	}
}

// Registry lists every category and formula in declaration order.
func (d *Dispatcher) Registry() Registry {
	var reg Registry
	for _, name := range d.cat.Categories() {
		defs, err := d.cat.Formulas(name)
		if err != nil {
			continue
		}
		cs := CategorySummary{Name: name, Formulas: make([]Summary, 0, len(defs))}
		for _, def := range defs {
			cs.Formulas = append(cs.Formulas, Summarize(def))
		}
		reg.Categories = append(reg.Categories, cs)
	}
	return reg
}
