package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/formula-cli/internal/formula"
	"github.com/sells-group/formula-cli/internal/worksheet"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the formula catalog to an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("out")
		if err := worksheet.Export(formula.Builtin(), path); err != nil {
			return eris.Wrap(err, "export")
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d formulas to %s\n", formula.Builtin().Len(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "formulas.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
