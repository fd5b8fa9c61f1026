//go:build !integration

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestExportCommand(t *testing.T) {
	dir := chdirTemp(t)
	resetFlags(t, exportCmd)
	path := filepath.Join(dir, "catalog.xlsx")

	out, err := execute(t, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 22 formulas")

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Sheets, 2)
}
