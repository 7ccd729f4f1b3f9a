package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <file>",
	Short: "Replace the installed artifact with the given file",
	Long: `Replace the installed artifact with the given file.

The running process is not touched; the replacement takes effect on the
next restart.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	s, err := activeStrategy()
	if err != nil {
		return err
	}
	if !lifecycle.CanReplaceArtifact(s) {
		if _, known := s.LocateArtifact(); !known {
			return fmt.Errorf("artifact location unknown; set %s", lifecycle.KeyArtifact)
		}
		return fmt.Errorf("strategy %q does not support artifact replacement", s.Name())
	}

	if err := lifecycle.ReplaceArtifact(cmd.Context(), s, args[0]); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}

	path, _ := s.LocateArtifact()
	fmt.Printf("Artifact replaced: %s\n", path)
	return nil
}
