package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Categories(t *testing.T) {
	cat := Builtin()
	assert.Equal(t, []string{
		CategoryBasic,
		CategoryRatios,
		CategorySensitivity,
		CategoryAllocation,
		CategoryPricing,
		CategoryProject,
	}, cat.Categories())
	assert.Equal(t, 22, cat.Len())
	assert.Same(t, cat, Builtin())
}

func TestBuiltin_DeclarationOrder(t *testing.T) {
	cat := Builtin()

	defs, err := cat.Formulas(CategoryBasic)
	require.NoError(t, err)
	var ids []string
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{
		"revenue",
		"contribution_from_revenue",
		"contribution_from_profit",
		"operating_profit_from_revenue",
		"operating_profit_from_contribution",
	}, ids)

	require.NotNil(t, cat.Default())
	assert.Equal(t, "revenue", cat.Default().ID)
}

func TestCatalog_Lookup(t *testing.T) {
	cat := Builtin()

	d, err := cat.Formula("roic")
	require.NoError(t, err)
	assert.Equal(t, CategoryRatios, d.Category)

	_, err = cat.Formula("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormula))
	assert.Contains(t, err.Error(), `"nope"`)

	_, err = cat.Formulas("Astrology")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	cat := Builtin()
	cats := cat.Categories()
	cats[0] = "mutated"
	assert.Equal(t, CategoryBasic, cat.Categories()[0])

	all := cat.All()
	all[0] = nil
	assert.NotNil(t, cat.All()[0])
}

func TestCatalog_Search(t *testing.T) {
	cat := Builtin()

	tests := []struct {
		term string
		want []string
	}{
		{"break", []string{"break_even_units"}},
		{"ROIC", []string{"roic", "ep_from_roic_coic"}},
		{"  economic profit (ep from ", []string{"ep_from_financing_costs", "ep_from_ic_coic", "ep_from_roic_coic"}},
		{"decision helper", []string{"optimal_internal_transfer_price"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var got []string
			for _, d := range cat.Search(tt.term) {
				got = append(got, d.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, cat.Search(""), cat.Len())
}

func TestNewCatalog_Errors(t *testing.T) {
	ok := func() *Definition {
		return &Definition{
			ID:        "a",
			Category:  "C",
			Variables: []Variable{money("x", "X", "")},
			Rules:     Rules{"x": func(Values) (float64, error) { return 1, nil }},
		}
	}

	_, err := NewCatalog(ok(), ok())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate formula id")

	noCat := ok()
	noCat.Category = ""
	_, err = NewCatalog(noCat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no category")

	_, err = NewCatalog(nil)
	require.Error(t, err)

	c, err := NewCatalog()
	require.NoError(t, err)
	assert.Nil(t, c.Default())
	assert.Empty(t, c.Categories())
}
