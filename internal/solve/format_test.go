package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/sells-group/formula-cli/internal/formula"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 10.0, Round(10.000000000000002, 2))
	assert.Equal(t, 0.25, Round(0.252, 2))
	assert.Equal(t, 0.252, Round(0.252, 4))
	assert.Equal(t, 1.24, Round(1.235, 2))
	assert.Equal(t, 0.0, Round(-0.0001, 2))
	assert.False(t, math.Signbit(Round(-0.0001, 2)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, 2, Precision(formula.KindMoney))
	assert.Equal(t, 2, Precision(formula.KindPercent))
	assert.Equal(t, 4, Precision(formula.KindFactor))
}

func TestFormatter_Value(t *testing.T) {
	f := NewFormatter(language.English)

	money := formula.Variable{ID: "m", Kind: formula.KindMoney}
	pct := formula.Variable{ID: "p", Kind: formula.KindPercent}
	fac := formula.Variable{ID: "f", Kind: formula.KindFactor}

	assert.Equal(t, "1,234.57", f.Value(money, 1234.5678))
	assert.Equal(t, "10", f.Value(money, 10))
	assert.Equal(t, "12.5%", f.Value(pct, 12.5))
	assert.Equal(t, "1.5", f.Value(fac, 1.5))
	assert.Equal(t, "0.3333", f.Value(fac, 1.0/3))
}

func TestFormatter_Money(t *testing.T) {
	f := NewFormatter(language.English)
	assert.Equal(t, "$100.00", f.Money(100))
	assert.Equal(t, "$1,000.50", f.Money(1000.5))
	assert.Equal(t, "-$5.25", f.Money(-5.25))
}

func TestFormatter_Advice(t *testing.T) {
	f := NewFormatter(language.English)
	low, high := 60.0, 95.0
	got := f.Advice(&formula.Advice{
		Scenario: formula.ScenarioHasCapacity,
		Low:      &low,
		High:     &high,
		Text:     "Between Supplier's Variable Cost and Buyer's External Purchase Price.",
	})
	assert.Equal(t, "Optimal Internal Transfer Price Range: [$60.00, $95.00]\n(Between Supplier's Variable Cost and Buyer's External Purchase Price)", got)
}

func TestFormatter_AdviceWarningShowsAmounts(t *testing.T) {
	f := NewFormatter(language.English)
	low, high := 1500.0, 2250.5
	got := f.Advice(&formula.Advice{
		Scenario: formula.ScenarioHasCapacity,
		Low:      &low,
		High:     &high,
		Warning:  "cost exceeds price",
		Inverted: true,
	})
	assert.Equal(t, "Warning: Supplier's Variable Cost ($2,250.50) is greater than Buyer's External Purchase Price ($1,500.00). "+
		"Internal transfer may not be beneficial under these terms.\n"+
		"Optimal Internal Transfer Price Range: [$1,500.00, $2,250.50]", got)
}

func TestBareLabel(t *testing.T) {
	assert.Equal(t, "Revenue", bareLabel("Revenue ($)"))
	assert.Equal(t, "COIC", bareLabel("COIC (%)"))
	assert.Equal(t, "Break-Even Units", bareLabel("Break-Even Units"))
}
