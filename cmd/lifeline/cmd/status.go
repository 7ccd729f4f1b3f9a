package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active strategy and its capabilities",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := activeStrategy()
	if err != nil {
		return err
	}

	artifact := "unknown"
	if path, known := s.LocateArtifact(); known {
		artifact = path
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	table.Append("Strategy", s.Name())
	table.Append("Artifact", artifact)
	table.Append("Can restart", yesNo(lifecycle.CanRestart(s)))
	table.Append("Can replace artifact", yesNo(lifecycle.CanReplaceArtifact(s)))
	table.Render()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
