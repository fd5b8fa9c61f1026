package worksheet

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/formula-cli/internal/formula"
)

// Sheet names written by Export.
const (
	SheetFormulas  = "Formulas"
	SheetVariables = "Variables"
)

var (
	formulaHeader  = []string{"category", "id", "name", "description", "variables"}
	variableHeader = []string{"formula", "id", "label", "kind", "precision", "scenario"}
)

// Export writes the catalog to an XLSX workbook at path: one row per formula
// on the Formulas sheet and one row per variable on the Variables sheet.
func Export(cat *formula.Catalog, path string) error {
	f := xlsx.NewFile()

	formulas, err := f.AddSheet(SheetFormulas)
	if err != nil {
		return eris.Wrap(err, "worksheet: add formulas sheet")
	}
	variables, err := f.AddSheet(SheetVariables)
	if err != nil {
		return eris.Wrap(err, "worksheet: add variables sheet")
	}

	addRow(formulas, formulaHeader...)
	addRow(variables, variableHeader...)

	for _, def := range cat.All() {
		addRow(formulas,
			def.Category,
			def.ID,
			def.Name,
			def.Description,
			strconv.Itoa(len(def.Variables)),
		)
		for _, v := range def.Variables {
			addRow(variables,
				def.ID,
				v.ID,
				v.Label,
				string(v.Kind),
				strconv.Itoa(v.Kind.Precision()),
				scenariosUsing(def, v.ID),
			)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "worksheet: save workbook")
	}
	zap.L().Info("worksheet: catalog exported",
		zap.String("path", path),
		zap.Int("formulas", cat.Len()),
	)
	return nil
}

// scenariosUsing lists the scenarios of a decision helper that use field id.
func scenariosUsing(def *formula.Definition, id string) string {
	var ids []string
	for _, s := range def.Scenarios {
		if slices.Contains(s.Fields, id) {
			ids = append(ids, s.ID)
		}
	}
	return strings.Join(ids, ",")
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
