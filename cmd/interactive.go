package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/formula-cli/internal/session"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"ui"},
	Short:   "Open the terminal calculator",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := newDispatcher("interactive")
		if err != nil {
			return err
		}

		p := tea.NewProgram(session.New(d), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return eris.Wrap(err, "interactive")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
