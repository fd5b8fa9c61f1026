package solve

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sells-group/formula-cli/internal/formula"
)

// Precision returns the display decimals for a variable kind.
func Precision(k formula.Kind) int {
	return k.Precision()
}

// Round rounds f half away from zero to the given number of decimals.
func Round(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(places))
	r := math.Round(f*pow) / pow
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Formatter renders numbers for one locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Value renders a display-scale value for a variable: rounded to the kind's
// precision with trailing zeros dropped, and a "%" suffix for percentages.
func (f *Formatter) Value(v formula.Variable, val float64) string {
	prec := v.Kind.Precision()
	s := f.p.Sprint(number.Decimal(Round(val, prec), number.MaxFractionDigits(prec)))
	if v.IsPercent() {
		s += "%"
	}
	return s
}

// Money renders an amount with a "$" prefix and exactly two decimals.
func (f *Formatter) Money(val float64) string {
	s := f.p.Sprint(number.Decimal(math.Abs(Round(val, 2)), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if val < 0 && Round(val, 2) != 0 {
		return "-$" + s
	}
	return "$" + s
}

// Advice renders decision helper output as plain text lines.
func (f *Formatter) Advice(a *formula.Advice) string {
	var b strings.Builder
	switch {
	case a.Inverted && a.IsRange():
		b.WriteString("Warning: Supplier's Variable Cost (")
		b.WriteString(f.Money(*a.High))
		b.WriteString(") is greater than Buyer's External Purchase Price (")
		b.WriteString(f.Money(*a.Low))
		b.WriteString("). Internal transfer may not be beneficial under these terms.\n")
	case a.Warning != "":
		b.WriteString("Warning: ")
		b.WriteString(a.Warning)
		b.WriteString("\n")
	}
	switch {
	case a.IsRange():
		b.WriteString("Optimal Internal Transfer Price Range: [")
		b.WriteString(f.Money(*a.Low))
		b.WriteString(", ")
		b.WriteString(f.Money(*a.High))
		b.WriteString("]")
	case a.Price != nil:
		b.WriteString("Optimal Internal Transfer Price: ")
		b.WriteString(f.Money(*a.Price))
	}
	if a.Text != "" {
		b.WriteString("\n(")
		b.WriteString(strings.TrimSuffix(a.Text, "."))
		b.WriteString(")")
	}
	return b.String()
}

// bareLabel strips a trailing unit marker such as " ($)" or " (%)".
func bareLabel(label string) string {
	for _, suffix := range []string{" ($)", " (%)"} {
		label = strings.TrimSuffix(label, suffix)
	}
	return label
}
