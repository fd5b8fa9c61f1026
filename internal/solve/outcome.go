package solve

import "github.com/sells-group/formula-cli/internal/formula"

// State is the dispatcher state after one solve attempt.
type State string

// Dispatcher states.
const (
	StateIdle          State = "idle"
	StateAwaitingInput State = "awaiting_input"
	StateSolved        State = "solved"
	StateBlocked       State = "blocked"
	StateError         State = "error"
)

// Kind identifies which outcome variant is populated.
type Kind string

// Outcome kinds.
const (
	KindIdle       Kind = "idle"
	KindComputed   Kind = "computed"
	KindEcho       Kind = "echo"
	KindDecision   Kind = "decision"
	KindGuidance   Kind = "guidance"
	KindUnsolvable Kind = "unsolvable"
	KindError      Kind = "error"
)

// Guidance texts.
const (
	MsgFillAllButOne = "Please fill all but one field to calculate."
	MsgLeaveOneBlank = "Leave one field blank to calculate its value."
)

// Request is one solve attempt: the raw text of every field the caller holds.
// Empty or whitespace-only text is a blank field.
type Request struct {
	Category string            `json:"category,omitempty"`
	Formula  string            `json:"formula"`
	Scenario string            `json:"scenario,omitempty"`
	Fields   map[string]string `json:"fields"`
}

// Outcome is the result of one solve attempt. Numbers are on the display
// scale: percentages are 0-100.
type Outcome struct {
	State   State  `json:"state"`
	Kind    Kind   `json:"kind"`
	Formula string `json:"formula"`

	Field     string             `json:"field,omitempty"`
	Value     *float64           `json:"value,omitempty"`
	Precision int                `json:"precision,omitempty"`
	Display   string             `json:"display,omitempty"`
	Values    map[string]float64 `json:"values,omitempty"`

	Consistent *bool           `json:"consistent,omitempty"`
	Decision   *formula.Advice `json:"decision,omitempty"`

	Message   string   `json:"message,omitempty"`
	Offending []string `json:"offending,omitempty"`
}

// Failed reports whether the attempt ended in the error state.
func (o Outcome) Failed() bool {
	return o.State == StateError
}
