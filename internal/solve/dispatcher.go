// Package solve runs one solve attempt against a formula catalog: it parses
// field text, enforces the one-blank rule, calls the formula's rule table
// and reports a display-ready outcome.
package solve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sells-group/formula-cli/internal/formula"
)

// ErrCategoryMismatch is returned when a request names a formula outside
// the requested category.
var ErrCategoryMismatch = eris.New("solve: formula is not in category")

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithEcho controls the all-fields-filled case. When on (the default) the
// first declared variable is recomputed and reported for information; when
// off the caller is asked to leave one field blank.
func WithEcho(on bool) Option {
	return func(d *Dispatcher) {
		d.echo = on
	}
}

// WithLocale sets the locale used for display strings.
func WithLocale(tag language.Tag) Option {
	return func(d *Dispatcher) {
		d.numfmt = NewFormatter(tag)
	}
}

// Dispatcher orchestrates solve attempts. It holds no per-attempt state and
// is safe for concurrent use.
type Dispatcher struct {
	cat    *formula.Catalog
	echo   bool
	numfmt *Formatter
}

// NewDispatcher creates a Dispatcher over cat.
func NewDispatcher(cat *formula.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cat:    cat,
		echo:   true,
		numfmt: NewFormatter(language.English),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Catalog returns the catalog the dispatcher solves against.
func (d *Dispatcher) Catalog() *formula.Catalog {
	return d.cat
}

// Formatter returns the dispatcher's number formatter.
func (d *Dispatcher) Formatter() *Formatter {
	return d.numfmt
}

// Solve runs one attempt. The error is non-nil only when the request does not
// name a known formula, category or scenario; every other result, including
// bad input, is reported in the Outcome.
func (d *Dispatcher) Solve(req Request) (Outcome, error) {
	def, scenario, err := d.resolve(req)
	if err != nil {
		return Outcome{}, err
	}

	out := d.attempt(def, scenario, req.Fields)
	zap.L().Debug("solve: attempt",
		zap.String("formula", def.ID),
		zap.String("scenario", scenario),
		zap.String("state", string(out.State)),
		zap.String("kind", string(out.Kind)),
		zap.String("field", out.Field),
	)
	return out, nil
}

func (d *Dispatcher) resolve(req Request) (*formula.Definition, string, error) {
	def, err := d.cat.Formula(req.Formula)
	if err != nil {
		return nil, "", err
	}
	if req.Category != "" && req.Category != def.Category {
		if _, err := d.cat.Formulas(req.Category); err != nil {
			return nil, "", err
		}
		return nil, "", eris.Wrapf(ErrCategoryMismatch, "formula %q category %q", def.ID, req.Category)
	}

	if !def.IsDecision() {
		return def, "", nil
	}
	scenario := req.Scenario
	if scenario == "" {
		scenario = def.DefaultScenario()
	}
	if _, ok := def.Scenario(scenario); !ok {
		return nil, "", eris.Wrapf(formula.ErrUnknownScenario, "formula %s scenario %q", def.ID, scenario)
	}
	return def, scenario, nil
}

func (d *Dispatcher) attempt(def *formula.Definition, scenario string, raw map[string]string) Outcome {
	base := Outcome{Formula: def.ID}

	display, err := ParseFields(def, scenario, raw)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return failed(base, pe.Error(), []string{pe.Field})
		}
		return failed(base, err.Error(), nil)
	}

	active := def.Active(scenario)
	blanks := display.Blanks(active)
	if len(blanks) == len(active) {
		base.State, base.Kind = StateIdle, KindIdle
		return base
	}

	if def.IsDecision() {
		return d.decide(base, def, scenario, display, blanks)
	}

	switch len(blanks) {
	case 0:
		return d.echoFirst(base, def, display)
	case 1:
		return d.solveOne(base, def, blanks[0], display)
	default:
		return guidance(base, MsgFillAllButOne)
	}
}

func (d *Dispatcher) decide(base Outcome, def *formula.Definition, scenario string, display formula.Values, blanks []string) Outcome {
	if len(blanks) > 0 {
		labels := make([]string, 0, len(blanks))
		for _, id := range blanks {
			v, _ := def.Variable(id)
			labels = append(labels, bareLabel(v.Label))
		}
		return guidance(base, "Please enter "+strings.Join(labels, " and ")+".")
	}

	advice, err := def.Advise(scenario, Normalize(def, display))
	if err != nil {
		return d.fromSolveError(base, def, "", err)
	}
	base.State, base.Kind = StateSolved, KindDecision
	base.Decision = advice
	base.Message = d.numfmt.Advice(advice)
	return base
}

func (d *Dispatcher) solveOne(base Outcome, def *formula.Definition, target string, display formula.Values) Outcome {
	res, err := def.Solve(target, Normalize(def, display))
	if err != nil {
		return d.fromSolveError(base, def, target, err)
	}

	v, _ := def.Variable(target)
	val := Round(Denormalize(def, res)[target], v.Kind.Precision())
	base.State, base.Kind = StateSolved, KindComputed
	d.setValue(&base, v, val)
	base.Message = fmt.Sprintf("Calculated %s: %s", strings.TrimSuffix(v.Label, ":"), base.Display)
	return base
}

// echoFirst recomputes the first declared variable from the others when
// every field is filled.
func (d *Dispatcher) echoFirst(base Outcome, def *formula.Definition, display formula.Values) Outcome {
	if !d.echo {
		return guidance(base, MsgLeaveOneBlank)
	}

	first := def.Variables[0]
	res, err := def.Solve(first.ID, Normalize(def, display))
	if err != nil {
		var ue *formula.UnsolvableError
		if errors.As(err, &ue) {
			return guidance(base, MsgLeaveOneBlank)
		}
		return d.fromSolveError(base, def, first.ID, err)
	}

	prec := first.Kind.Precision()
	val := Round(Denormalize(def, res)[first.ID], prec)
	consistent := val == Round(display[first.ID], prec)

	base.State, base.Kind = StateAwaitingInput, KindEcho
	base.Consistent = &consistent
	d.setValue(&base, first, val)
	base.Message = fmt.Sprintf("Result for %s: %s (assuming all inputs provided)", strings.TrimSuffix(first.Label, ":"), base.Display)
	return base
}

func (d *Dispatcher) setValue(o *Outcome, v formula.Variable, val float64) {
	o.Field = v.ID
	o.Value = &val
	o.Precision = v.Kind.Precision()
	o.Display = d.numfmt.Value(v, val)
	o.Values = map[string]float64{v.ID: val}
}

func (d *Dispatcher) fromSolveError(base Outcome, def *formula.Definition, target string, err error) Outcome {
	var ue *formula.UnsolvableError
	if errors.As(err, &ue) {
		field := target
		if field == "" {
			field = ue.Missing
		}
		label := field
		if v, ok := def.Variable(field); ok {
			label = v.Label
		}
		base.State, base.Kind = StateBlocked, KindUnsolvable
		base.Field = field
		base.Message = fmt.Sprintf("Could not calculate %s from the given inputs.", label)
		base.Offending = []string{field}
		return base
	}

	var de *formula.DegenerateError
	if errors.As(err, &de) {
		return failed(base, de.Reason, offending(def, de))
	}
	return failed(base, err.Error(), nil)
}

// offending returns the fields a degenerate failure implicates: those the
// rule named, then any declared field whose id or label the message mentions.
func offending(def *formula.Definition, de *formula.DegenerateError) []string {
	msg := strings.ToLower(de.Reason)
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range de.Fields {
		if _, ok := def.Variable(id); ok {
			add(id)
		}
	}
	for _, v := range def.Variables {
		if strings.Contains(msg, strings.ToLower(v.ID)) || strings.Contains(msg, strings.ToLower(v.Label)) {
			add(v.ID)
		}
	}
	return ids
}

func guidance(base Outcome, msg string) Outcome {
	base.State, base.Kind = StateAwaitingInput, KindGuidance
	base.Message = msg
	return base
}

func failed(base Outcome, msg string, fields []string) Outcome {
	base.State, base.Kind = StateError, KindError
	base.Message = msg
	base.Offending = fields
	return base
}
