package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/formula-cli/internal/formula"
)

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Browse the formula catalog",
}

// -- formulas list --

var formulasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List formulas by category",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat := formula.Builtin()
		category, _ := cmd.Flags().GetString("category")

		defs := cat.All()
		if category != "" {
			var err error
			defs, err = cat.Formulas(category)
			if err != nil {
				return eris.Wrap(err, "formulas list")
			}
		}

		formatFormulaList(cmd.OutOrStdout(), defs)
		return nil
	},
}

// -- formulas show --

var formulasShowCmd = &cobra.Command{
	Use:   "show <formula-id>",
	Short: "Show a formula's variables and scenarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := formula.Builtin().Formula(args[0])
		if err != nil {
			return eris.Wrap(err, "formulas show")
		}
		formatFormula(cmd.OutOrStdout(), def)
		return nil
	},
}

// -- formulas search --

var formulasSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find formulas by name or category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs := formula.Builtin().Search(strings.Join(args, " "))
		if len(defs) == 0 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No formulas found.")
			return nil
		}
		formatFormulaList(cmd.OutOrStdout(), defs)
		return nil
	},
}

func init() {
	formulasListCmd.Flags().String("category", "", "only list formulas in this category")

	formulasCmd.AddCommand(formulasListCmd, formulasShowCmd, formulasSearchCmd)
	rootCmd.AddCommand(formulasCmd)
}

// formatFormulaList writes defs grouped under category headings.
func formatFormulaList(out io.Writer, defs []*formula.Definition) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	category := ""
	for _, d := range defs {
		if d.Category != category {
			if category != "" {
				_, _ = fmt.Fprintln(w)
			}
			category = d.Category
			_, _ = fmt.Fprintf(w, "%s\n", category)
		}
		_, _ = fmt.Fprintf(w, "  %s\t%s\n", d.ID, d.Name)
	}
	_ = w.Flush()
}

// formatFormula writes one formula's details.
func formatFormula(out io.Writer, def *formula.Definition) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID:\t%s\n", def.ID)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", def.Name)
	_, _ = fmt.Fprintf(w, "Category:\t%s\n", def.Category)
	_, _ = fmt.Fprintf(w, "Formula:\t%s\n", def.Description)
	if def.Details != "" {
		_, _ = fmt.Fprintf(w, "Details:\t%s\n", def.Details)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "VARIABLE\tLABEL\tKIND\tPLACEHOLDER")
	_, _ = fmt.Fprintln(w, "--------\t-----\t----\t-----------")
	for _, v := range def.Variables {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Label, v.Kind, v.Placeholder)
	}
	_ = w.Flush()

	if len(def.Scenarios) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SCENARIO\tLABEL\tFIELDS")
	_, _ = fmt.Fprintln(w, "--------\t-----\t------")
	for _, s := range def.Scenarios {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Label, strings.Join(s.Fields, ", "))
	}
	_ = w.Flush()
}
