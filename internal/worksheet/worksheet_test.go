package worksheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/formula-cli/internal/formula"
	"github.com/sells-group/formula-cli/internal/solve"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Cases")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "cases.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

const casesYAML = `
cases:
  - name: revenue from price and volume
    formula: revenue
    fields:
      revenue: null
      salesPricePerUnit: 50
      salesVolume: 200
  - name: roic
    category: "Profitability Ratios & Advanced Financial Metrics"
    formula: roic
    fields:
      operatingProfit: "$4,000"
      investedCapital: 20000
  - formula: optimal_internal_transfer_price
    scenario: has_capacity
    fields:
      supplierVariableCost: 60.5
      buyerExternalPurchasePrice: 95
`

func TestReadYAML(t *testing.T) {
	cases, err := ReadYAML(strings.NewReader(casesYAML))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, "revenue from price and volume", cases[0].Name)
	assert.Equal(t, map[string]string{"revenue": "", "salesPricePerUnit": "50", "salesVolume": "200"}, cases[0].Fields)

	assert.Equal(t, formula.CategoryRatios, cases[1].Category)
	assert.Equal(t, "$4,000", cases[1].Fields["operatingProfit"])

	// Name defaults to the formula id.
	assert.Equal(t, "optimal_internal_transfer_price", cases[2].Name)
	assert.Equal(t, formula.ScenarioHasCapacity, cases[2].Scenario)
	assert.Equal(t, "60.5", cases[2].Fields["supplierVariableCost"])
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("cases:\n  - name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formula is required")

	_, err = ReadYAML(strings.NewReader("cases:\n  - formula: revenue\n    fields:\n      revenue: [1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case 1")

	_, err = ReadYAML(strings.NewReader("cases: ["))
	assert.Error(t, err)

	cases, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestReadCSV(t *testing.T) {
	in := `name,category,formula,scenario,revenue,salesPricePerUnit,salesVolume,roic,operatingProfit,investedCapital
rev,,revenue,,,50,200,,,
, , , , , , , , ,
roic,,roic,,,,,,"4,000",20000
`
	cases, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "rev", cases[0].Name)
	assert.Equal(t, map[string]string{"salesPricePerUnit": "50", "salesVolume": "200"}, cases[0].Fields)
	assert.Equal(t, map[string]string{"operatingProfit": "4,000", "investedCapital": "20000"}, cases[1].Fields)
}

func TestReadCSV_Header(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("name,formula\nx,revenue\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header must start with")

	_, err = ReadCSV(strings.NewReader("name,category,id,scenario\nx,,revenue,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `header column 3 is "id"`)

	_, err = ReadCSV(strings.NewReader("name,category,formula,scenario\nx,,,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case 2: formula is required")

	cases, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestReadXLSX(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"Name", "Category", "Formula", "Scenario", "fixedCosts", "salesPricePerUnit", "varCostPerUnit"},
		{"break even", "", "break_even_units", "", "2000", "50", "30"},
		{"short row", "", "break_even_units", ""},
	})

	cases, err := ReadXLSX(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "break even", cases[0].Name)
	assert.Equal(t, map[string]string{"fixedCosts": "2000", "salesPricePerUnit": "50", "varCostPerUnit": "30"}, cases[0].Fields)
	assert.Empty(t, cases[1].Fields)
}

func TestLoad_ByExtension(t *testing.T) {
	yamlPath := writeFile(t, "cases.yml", casesYAML)
	cases, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	csvPath := writeFile(t, "cases.CSV", "name,category,formula,scenario\nx,,revenue,\n")
	cases, err = Load(csvPath)
	require.NoError(t, err)
	assert.Len(t, cases, 1)

	_, err = Load(writeFile(t, "cases.txt", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	cases, err := ReadYAML(strings.NewReader(casesYAML))
	require.NoError(t, err)
	cases = append(cases,
		Case{Name: "unknown", Formula: "nope"},
		Case{Name: "degenerate", Formula: "roic", Fields: map[string]string{"roic": "0", "operatingProfit": "4000"}},
		Case{Name: "guidance", Formula: "revenue", Fields: map[string]string{"revenue": "100"}},
	)

	r := NewRunner(solve.NewDispatcher(formula.Builtin()), 2)
	rep, err := r.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Results, 6)
	assert.Equal(t, 3, rep.Solved)
	assert.Equal(t, 2, rep.Failed)

	// Results keep case order.
	for i, res := range rep.Results {
		assert.Equal(t, cases[i].Name, res.Case.Name)
	}

	rev := rep.Results[0].Outcome
	assert.Equal(t, solve.StateSolved, rev.State)
	require.NotNil(t, rev.Value)
	assert.Equal(t, 10000.0, *rev.Value)

	roic := rep.Results[1].Outcome
	require.NotNil(t, roic.Value)
	assert.Equal(t, 20.0, *roic.Value)

	assert.Equal(t, solve.KindDecision, rep.Results[2].Outcome.Kind)

	assert.True(t, rep.Results[3].Failed())
	assert.Contains(t, rep.Results[3].Err, "unknown formula")

	assert.True(t, rep.Results[4].Failed())
	assert.Empty(t, rep.Results[4].Err)

	assert.False(t, rep.Results[5].Failed())
	assert.Equal(t, solve.KindGuidance, rep.Results[5].Outcome.Kind)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(solve.NewDispatcher(formula.Builtin()), 0)
	_, err := r.Run(ctx, []Case{{Name: "x", Formula: "revenue"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run cancelled")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	cat := formula.Builtin()
	require.NoError(t, Export(cat, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	formulas, ok := f.Sheet[SheetFormulas]
	require.True(t, ok)
	require.Len(t, formulas.Rows, cat.Len()+1)
	assert.Equal(t, "category", formulas.Rows[0].Cells[0].String())
	first := formulas.Rows[1].Cells
	assert.Equal(t, formula.CategoryBasic, first[0].String())
	assert.Equal(t, "revenue", first[1].String())
	assert.Equal(t, "3", first[4].String())

	variables, ok := f.Sheet[SheetVariables]
	require.True(t, ok)
	total := 0
	for _, d := range cat.All() {
		total += len(d.Variables)
	}
	require.Len(t, variables.Rows, total+1)

	var sawScenario bool
	for _, row := range variables.Rows[1:] {
		if row.Cells[0].String() == "optimal_internal_transfer_price" && row.Cells[1].String() == "marketPriceSupplierExternal" {
			assert.Equal(t, formula.ScenarioNoCapacity, row.Cells[5].String())
			assert.Equal(t, "2", row.Cells[4].String())
			sawScenario = true
		}
	}
	assert.True(t, sawScenario)
}
