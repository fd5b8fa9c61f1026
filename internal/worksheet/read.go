// Package worksheet reads batches of solve cases from YAML, CSV and XLSX
// files, runs them through the dispatcher and exports the catalog as a
// workbook.
package worksheet

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/formula-cli/internal/solve"
)

// Case is one named solve request.
type Case struct {
	Name     string            `yaml:"name" json:"name"`
	Category string            `yaml:"category,omitempty" json:"category,omitempty"`
	Formula  string            `yaml:"formula" json:"formula"`
	Scenario string            `yaml:"scenario,omitempty" json:"scenario,omitempty"`
	Fields   map[string]string `yaml:"fields" json:"fields"`
}

// Request converts the case to a dispatcher request.
func (c Case) Request() solve.Request {
	return solve.Request{
		Category: c.Category,
		Formula:  c.Formula,
		Scenario: c.Scenario,
		Fields:   c.Fields,
	}
}

// Leading columns of a tabular case file; every later column is a field id.
var metaColumns = []string{"name", "category", "formula", "scenario"}

// Load reads cases from path, choosing the reader by file extension.
func Load(path string) ([]Case, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "worksheet: open file")
		}
		defer f.Close() //nolint:errcheck
		return ReadYAML(f)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "worksheet: open file")
		}
		defer f.Close() //nolint:errcheck
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("worksheet: unsupported file type %q", ext)
	}
}

type yamlFile struct {
	Cases []yamlCase `yaml:"cases"`
}

type yamlCase struct {
	Name     string         `yaml:"name"`
	Category string         `yaml:"category"`
	Formula  string         `yaml:"formula"`
	Scenario string         `yaml:"scenario"`
	Fields   map[string]any `yaml:"fields"`
}

// ReadYAML decodes a document of the form {cases: [{name, category,
// formula, scenario, fields}]}. Field values may be numbers, strings or null.
func ReadYAML(r io.Reader) ([]Case, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, eris.Wrap(err, "worksheet: decode yaml")
	}

	cases := make([]Case, 0, len(doc.Cases))
	for i, yc := range doc.Cases {
		fields, err := solve.FieldTexts(yc.Fields)
		if err != nil {
			return nil, eris.Wrapf(err, "worksheet: case %d", i+1)
		}
		c := Case{
			Name:     yc.Name,
			Category: yc.Category,
			Formula:  yc.Formula,
			Scenario: yc.Scenario,
			Fields:   fields,
		}
		if err := c.check(i + 1); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// ReadCSV reads a header row followed by one case per row.
func ReadCSV(r io.Reader) ([]Case, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "worksheet: read csv")
	}
	return casesFromRows(rows)
}

// ReadXLSX reads cases from the first sheet of a workbook, laid out like
// a CSV case file.
func ReadXLSX(path string) ([]Case, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "worksheet: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("worksheet: workbook has no sheets")
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return casesFromRows(rows)
}

// casesFromRows maps a header row plus data rows to cases. Blank cells are
// blank fields; fully blank rows are skipped.
func casesFromRows(rows [][]string) ([]Case, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) < len(metaColumns) {
		return nil, eris.Errorf("worksheet: header must start with %s", strings.Join(metaColumns, ","))
	}
	for i, want := range metaColumns {
		if !strings.EqualFold(header[i], want) {
			return nil, eris.Errorf("worksheet: header column %d is %q, want %q", i+1, header[i], want)
		}
	}

	var cases []Case
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		cell := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		c := Case{
			Name:     cell(0),
			Category: cell(1),
			Formula:  cell(2),
			Scenario: cell(3),
			Fields:   make(map[string]string),
		}
		for i := len(metaColumns); i < len(header); i++ {
			if header[i] == "" {
				continue
			}
			if v := cell(i); v != "" {
				c.Fields[header[i]] = v
			}
		}
		// Row numbers count the header as row 1.
		if err := c.check(n + 2); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (c *Case) check(pos int) error {
	if c.Formula == "" {
		return eris.Errorf("worksheet: case %d: formula is required", pos)
	}
	if c.Name == "" {
		c.Name = c.Formula
	}
	if c.Fields == nil {
		c.Fields = map[string]string{}
	}
	return nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
