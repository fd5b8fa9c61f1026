package formula

import "math"

// zeroTolerance is the magnitude below which a divisor counts as zero.
const zeroTolerance = 1e-12

// Values holds the supplied variable values. A missing key is a blank field.
type Values map[string]float64

// Has reports whether id has a value.
func (v Values) Has(id string) bool {
	_, ok := v[id]
	return ok
}

// Get returns the value for id and whether it is present.
func (v Values) Get(id string) (float64, bool) {
	f, ok := v[id]
	return f, ok
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, f := range v {
		out[k] = f
	}
	return out
}

// Without returns a copy with id removed.
func (v Values) Without(id string) Values {
	out := v.Clone()
	delete(out, id)
	return out
}

// Blanks returns the ids of vars that have no value, in declaration order.
func (v Values) Blanks(vars []Variable) []string {
	var blanks []string
	for _, vr := range vars {
		if !v.Has(vr.ID) {
			blanks = append(blanks, vr.ID)
		}
	}
	return blanks
}

func isZero(f float64) bool {
	return math.Abs(f) < zeroTolerance
}
