package solve

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/formula-cli/internal/formula"
)

// ParseError reports field text that is not a number.
type ParseError struct {
	Field string
	Label string
	Raw   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid number entered in %q.", e.Label)
}

// ParseNumber converts field text to a number. It reports ok=false for blank
// text. Thousands separators, a leading "$" and a trailing "%" are accepted.
func ParseNumber(raw string) (f float64, ok bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false, strconv.ErrSyntax
	}
	if s, ok = ungroup(s); !ok {
		return 0, false, strconv.ErrSyntax
	}

	f, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, strconv.ErrRange
	}
	if neg {
		f = -f
	}
	return f, true, nil
}

// ungroup removes thousands separators. Commas are only allowed in the
// integer part, between groups of exactly three digits.
func ungroup(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}
	intPart, rest := s, ""
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	if strings.Contains(rest, ",") {
		return "", false
	}
	groups := strings.Split(intPart, ",")
	for i, g := range groups {
		if !isDigits(g) || len(g) > 3 || (i > 0 && len(g) != 3) {
			return "", false
		}
	}
	return strings.Join(groups, "") + rest, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseFields parses the text of the formula's active fields. Fields outside
// the active set are ignored. Values stay on the display scale.
func ParseFields(def *formula.Definition, scenario string, raw map[string]string) (formula.Values, error) {
	vals := make(formula.Values)
	for _, v := range def.Active(scenario) {
		text, present := raw[v.ID]
		if !present {
			continue
		}
		f, ok, err := ParseNumber(text)
		if err != nil {
			return nil, &ParseError{Field: v.ID, Label: v.Label, Raw: text}
		}
		if ok {
			vals[v.ID] = f
		}
	}
	return vals, nil
}

// Normalize converts percent fields from the 0-100 display scale to fractions.
func Normalize(def *formula.Definition, v formula.Values) formula.Values {
	out := v.Clone()
	for _, vr := range def.Variables {
		if f, ok := out[vr.ID]; ok && vr.IsPercent() {
			out[vr.ID] = f / 100
		}
	}
	return out
}

// Denormalize converts percent fields from fractions back to the display scale.
func Denormalize(def *formula.Definition, r formula.Result) formula.Result {
	out := make(formula.Result, len(r))
	for id, f := range r {
		if vr, ok := def.Variable(id); ok && vr.IsPercent() {
			f *= 100
		}
		out[id] = f
	}
	return out
}

// FieldText converts a decoded JSON or YAML scalar to field text. Nil is a
// blank field; strings are passed through to be parsed like typed input.
func FieldText(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", eris.Errorf("solve: field value %v (%T) must be a number, string or null", v, v)
	}
}

// FieldTexts converts every value with FieldText.
func FieldTexts(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for id, v := range in {
		s, err := FieldText(v)
		if err != nil {
			return nil, eris.Wrapf(err, "field %q", id)
		}
		out[id] = s
	}
	return out, nil
}
