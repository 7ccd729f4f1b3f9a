package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeline-sh/lifeline/internal/strategies"
	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the host process through the active strategy",
	Long: `Restart the host process through the active strategy.

Depending on the strategy, this command may never return: a synchronous
restart replaces the process image in place.`,
	RunE: runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	s, err := activeStrategy()
	if err != nil {
		return err
	}
	if !lifecycle.CanRestart(s) {
		return fmt.Errorf("strategy %q does not support restart", s.Name())
	}
	// Variants like exec and docker restart whichever process invokes
	// them. From this command that would be the CLI itself, not the host,
	// so they only make sense when the embedding host drives the restart.
	if strategies.RestartsCaller(s.Name()) {
		return fmt.Errorf("strategy %q restarts the invoking process; it must be triggered by the host itself, not by this command", s.Name())
	}

	lifecycle.NotifyStopping(s)
	if err := lifecycle.Restart(cmd.Context(), s); err != nil {
		return fmt.Errorf("restart failed: %w", err)
	}

	// Only reached when the restart was scheduled asynchronously.
	fmt.Println("Restart scheduled")
	return nil
}
