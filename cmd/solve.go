package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/formula-cli/internal/solve"
)

var solveCmd = &cobra.Command{
	Use:   "solve <formula-id>",
	Short: "Solve a formula for its one blank field",
	Long: `Runs one solve attempt. Give every known field with --set id=value and
leave the field to calculate unset. An empty value (--set id=) is also blank.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher("solve")
		if err != nil {
			return err
		}

		sets, _ := cmd.Flags().GetStringArray("set")
		fields, err := parseAssignments(sets)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		scenario, _ := cmd.Flags().GetString("scenario")
		asJSON, _ := cmd.Flags().GetBool("json")

		out, err := d.Solve(solve.Request{
			Category: category,
			Formula:  args[0],
			Scenario: scenario,
			Fields:   fields,
		})
		if err != nil {
			return eris.Wrap(err, "solve")
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		formatOutcome(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringArray("set", nil, "field value as id=value (repeatable)")
	solveCmd.Flags().String("category", "", "category the formula must belong to")
	solveCmd.Flags().String("scenario", "", "decision helper scenario")
	solveCmd.Flags().Bool("json", false, "print the outcome as JSON")
	rootCmd.AddCommand(solveCmd)
}

// parseAssignments turns id=value pairs into raw field text.
func parseAssignments(sets []string) (map[string]string, error) {
	fields := make(map[string]string, len(sets))
	for _, s := range sets {
		id, val, ok := strings.Cut(s, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, eris.Errorf("solve: --set %q must be id=value", s)
		}
		if _, dup := fields[id]; dup {
			return nil, eris.Errorf("solve: field %q set twice", id)
		}
		fields[id] = val
	}
	return fields, nil
}

// formatOutcome writes a human-readable outcome.
func formatOutcome(out io.Writer, o solve.Outcome) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Formula:\t%s\n", o.Formula)
	_, _ = fmt.Fprintf(w, "State:\t%s\n", o.State)
	if o.Field != "" && o.Display != "" {
		_, _ = fmt.Fprintf(w, "%s:\t%s\n", o.Field, o.Display)
	}
	if o.Consistent != nil {
		_, _ = fmt.Fprintf(w, "Consistent:\t%t\n", *o.Consistent)
	}
	if len(o.Offending) > 0 {
		ids := append([]string(nil), o.Offending...)
		sort.Strings(ids)
		_, _ = fmt.Fprintf(w, "Check:\t%s\n", strings.Join(ids, ", "))
	}
	_ = w.Flush()

	if o.Message != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, o.Message)
	}
}
