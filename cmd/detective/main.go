// Detective Quest: a text exploration of a mansion. The player walks a fixed
// binary map of rooms, collects the clue found in each room into a sorted
// catalog and sees which suspect each clue points to.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"detective/cmd/detective/ui"
	"detective/internal/config"
	"detective/internal/console"
)

var lookupEnv = os.LookupEnv

func newRootCmd() *cobra.Command {
	var (
		debugFlag   bool
		journalFlag string
		tuiFlag     bool
	)

	cmd := &cobra.Command{
		Use:          "detective",
		Short:        "Explore the mansion and collect clues",
		Long:         `Walk the mansion room by room with (e) left, (d) right and (s) quit. Every clue found is reported in alphabetical order at the end.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(lookupEnv)
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugFlag
			}
			if cmd.Flags().Changed("journal") {
				cfg.JournalPath = journalFlag
			}
			if cmd.Flags().Changed("tui") {
				cfg.TUI = tuiFlag
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&debugFlag, "debug", false, "write diagnostics to the debug log")
	cmd.Flags().StringVar(&journalFlag, "journal", "", "sqlite file recording every session event")
	cmd.Flags().BoolVar(&tuiFlag, "tui", false, "use the full-screen terminal interface")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	a, cleanup, err := createApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.TUI {
		return runTUI(a, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if err := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.debug).Run(a.session); err != nil {
		// A broken input stream still ends the game normally.
		a.debug.Printf("Console input failed: %v", err)
	}
	return nil
}

func runTUI(a *app, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(ui.NewModel(a.session, a.debug),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal interface: %w", err)
	}
	if !a.session.Terminated() {
		a.session.Quit()
	}
	console.WriteReport(out, a.session)
	return nil
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
