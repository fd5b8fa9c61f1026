package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/formula-cli/internal/config"
	"github.com/sells-group/formula-cli/internal/formula"
	"github.com/sells-group/formula-cli/internal/solve"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "formula-cli",
	Short: "Financial formula calculator",
	Long:  "Solves financial formulas for whichever single field is left blank, from the terminal, worksheets or an HTTP API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

// newDispatcher validates the config for mode and builds a dispatcher over
// the built-in catalog.
func newDispatcher(mode string) (*solve.Dispatcher, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}
	tag, err := cfg.Solve.Language()
	if err != nil {
		return nil, err
	}
	return solve.NewDispatcher(formula.Builtin(),
		solve.WithEcho(cfg.Solve.EchoWhenComplete),
		solve.WithLocale(tag),
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
