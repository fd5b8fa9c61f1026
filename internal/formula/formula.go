// Package formula holds the catalog of financial formulas and the per-formula
// rule tables that recover one blank variable from the others.
package formula

import (
	"errors"
	"math"
	"slices"

	"github.com/rotisserie/eris"
)

// Kind describes the unit semantics of a variable.
type Kind string

// Variable kinds.
const (
	KindMoney   Kind = "money"
	KindCount   Kind = "count"
	KindFactor  Kind = "factor"
	KindPercent Kind = "percent" // entered and displayed on a 0-100 scale, used as a fraction
	KindMonths  Kind = "months"
	KindYears   Kind = "years"
)

// Precision returns the number of display decimals for the kind.
// Monetary and percentage quantities use 2; dimensionless ones use 4.
func (k Kind) Precision() int {
	switch k {
	case KindMoney, KindPercent:
		return 2
	default:
		return 4
	}
}

// Variable is one quantity in a formula.
type Variable struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Hint        string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// IsPercent reports whether the variable is normalized to a fraction before use.
func (v Variable) IsPercent() bool {
	return v.Kind == KindPercent
}

// Rule is one rearranged expression: it recovers a single variable from the
// values of the others. Percent variables arrive as fractions.
type Rule func(v Values) (float64, error)

// Rules maps the id of the blank variable to the rule that recovers it.
type Rules map[string]Rule

// Result maps variable ids to newly computed values.
type Result map[string]float64

// Scenario is one branch of a decision helper and the fields it uses.
type Scenario struct {
	ID     string   `json:"id" yaml:"id"`
	Label  string   `json:"label" yaml:"label"`
	Fields []string `json:"fields" yaml:"fields"`
}

// Advisor produces a recommendation for a decision helper.
type Advisor func(scenario string, v Values) (*Advice, error)

// Definition is an immutable formula: identity, variables, and either a
// rule table (equations) or scenarios plus an advisor (decision helpers).
type Definition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Details     string     `json:"details,omitempty"`
	Variables   []Variable `json:"variables"`
	Scenarios   []Scenario `json:"scenarios,omitempty"`

	Rules   Rules   `json:"-"`
	Advisor Advisor `json:"-"`
}

// IsDecision reports whether the formula is a decision helper with no single
// numeric target.
func (d *Definition) IsDecision() bool {
	return d.Advisor != nil
}

// Variable returns the variable with the given id.
func (d *Definition) Variable(id string) (Variable, bool) {
	for _, v := range d.Variables {
		if v.ID == id {
			return v, true
		}
	}
	return Variable{}, false
}

// DefaultScenario returns the first declared scenario id, or "" for
// equation formulas.
func (d *Definition) DefaultScenario() string {
	if len(d.Scenarios) == 0 {
		return ""
	}
	return d.Scenarios[0].ID
}

// Scenario returns the scenario with the given id.
func (d *Definition) Scenario(id string) (Scenario, bool) {
	for _, s := range d.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Active returns the variables that take part in a solve attempt. Equation
// formulas use every variable; decision helpers use only the fields the
// scenario declares, in declaration order.
func (d *Definition) Active(scenario string) []Variable {
	if !d.IsDecision() {
		return d.Variables
	}
	s, ok := d.Scenario(scenario)
	if !ok {
		return nil
	}
	active := make([]Variable, 0, len(s.Fields))
	for _, v := range d.Variables {
		if slices.Contains(s.Fields, v.ID) {
			active = append(active, v)
		}
	}
	return active
}

// Solve recovers target from the other values using the formula's rule
// table. It returns *UnsolvableError when no rule covers target or an input
// the rule needs is blank, and *DegenerateError when the inputs make the
// rearrangement invalid.
func (d *Definition) Solve(target string, v Values) (Result, error) {
	if d.IsDecision() {
		return nil, eris.Errorf("formula: %s is a decision helper and has no solve target", d.ID)
	}
	rule, ok := d.Rules[target]
	if !ok {
		return nil, &UnsolvableError{Formula: d.ID, Field: target}
	}
	for _, vr := range d.Variables {
		if vr.ID != target && !v.Has(vr.ID) {
			return nil, &UnsolvableError{Formula: d.ID, Field: target, Missing: vr.ID}
		}
	}

	val, err := rule(v.Without(target))
	if err != nil {
		var te *termError
		if errors.As(err, &te) {
			return nil, &UnsolvableError{Formula: d.ID, Field: target, Term: te.term}
		}
		return nil, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		label := target
		if vr, ok := d.Variable(target); ok {
			label = vr.Label
		}
		return nil, degenerate(label+" is not a finite number for these inputs", target)
	}
	return Result{target: val}, nil
}

// Advise runs the decision helper for the given scenario.
func (d *Definition) Advise(scenario string, v Values) (*Advice, error) {
	if !d.IsDecision() {
		return nil, eris.Errorf("formula: %s is not a decision helper", d.ID)
	}
	if _, ok := d.Scenario(scenario); !ok {
		return nil, eris.Wrapf(ErrUnknownScenario, "formula %s scenario %q", d.ID, scenario)
	}
	return d.Advisor(scenario, v)
}

// Validate checks the definition's internal consistency: unique variable
// ids, and a rule table keyed only by declared variables (or, for decision
// helpers, scenarios that only name declared variables).
func (d *Definition) Validate() error {
	if d.ID == "" {
		return eris.New("formula: definition id cannot be empty")
	}
	if len(d.Variables) == 0 {
		return eris.Errorf("formula: %s declares no variables", d.ID)
	}

	seen := make(map[string]bool, len(d.Variables))
	for _, v := range d.Variables {
		if v.ID == "" {
			return eris.Errorf("formula: %s has a variable with an empty id", d.ID)
		}
		if seen[v.ID] {
			return eris.Errorf("formula: %s declares variable %q twice", d.ID, v.ID)
		}
		seen[v.ID] = true
	}

	if d.IsDecision() {
		if len(d.Rules) > 0 {
			return eris.Errorf("formula: decision helper %s cannot also carry rules", d.ID)
		}
		if len(d.Scenarios) == 0 {
			return eris.Errorf("formula: decision helper %s declares no scenarios", d.ID)
		}
		for _, s := range d.Scenarios {
			for _, f := range s.Fields {
				if !seen[f] {
					return eris.Errorf("formula: %s scenario %q names undeclared field %q", d.ID, s.ID, f)
				}
			}
		}
		return nil
	}

	// A variable without a rule is legal; solving for it is reported as unsolvable.
	if len(d.Rules) == 0 {
		return eris.Errorf("formula: %s has no rules", d.ID)
	}
	for id, r := range d.Rules {
		if !seen[id] {
			return eris.Errorf("formula: %s has a rule for undeclared variable %q", d.ID, id)
		}
		if r == nil {
			return eris.Errorf("formula: %s rule for %q is nil", d.ID, id)
		}
	}
	return nil
}
