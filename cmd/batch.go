package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/formula-cli/internal/worksheet"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve every case in a YAML, CSV or XLSX worksheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if f, _ := cmd.Flags().GetString("format"); f != "" {
			cfg.Batch.Format = f
		}
		if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
			cfg.Batch.Concurrency = n
		}

		d, err := newDispatcher("batch")
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("file")
		cases, err := worksheet.Load(path)
		if err != nil {
			return eris.Wrap(err, "batch")
		}

		rep, err := worksheet.NewRunner(d, cfg.Batch.Concurrency).Run(ctx, cases)
		if err != nil {
			return eris.Wrap(err, "batch")
		}

		if cfg.Batch.Format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		formatReport(cmd.OutOrStdout(), rep)
		return nil
	},
}

func init() {
	batchCmd.Flags().String("file", "", "case file (.yaml, .yml, .csv or .xlsx)")
	batchCmd.Flags().String("format", "", "output format: table or json (default from config)")
	batchCmd.Flags().Int("concurrency", 0, "cases solved at once (default from config)")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

// formatReport writes one line per case followed by totals.
func formatReport(out io.Writer, rep *worksheet.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CASE\tFORMULA\tSTATE\tFIELD\tVALUE\tMESSAGE")
	_, _ = fmt.Fprintln(w, "----\t-------\t-----\t-----\t-----\t-------")

	for _, r := range rep.Results {
		state, msg := string(r.Outcome.State), r.Outcome.Message
		if r.Err != "" {
			state, msg = "rejected", r.Err
		}
		name := r.Case.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			r.Case.Formula,
			state,
			r.Outcome.Field,
			r.Outcome.Display,
			strings.ReplaceAll(msg, "\n", " "),
		)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nRun %s: %d cases, %d solved, %d failed in %s\n",
		rep.RunID, len(rep.Results), rep.Solved, rep.Failed, rep.Elapsed.Round(time.Millisecond))
}
