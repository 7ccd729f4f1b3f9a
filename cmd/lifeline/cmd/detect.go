package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeline-sh/lifeline/internal/strategies"
	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Suggest a strategy for the current environment",
	Long: `Suggest a strategy for the current environment.

The suggestion is a hint for filling in the configuration; resolution
itself always follows the configured selection key.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	suggested := strategies.Detect()
	configured := cfg.GetString(lifecycle.KeyStrategy)

	fmt.Printf("Suggested strategy: %s\n", suggested)
	switch configured {
	case "":
		fmt.Printf("No strategy configured; set %s to activate one.\n", lifecycle.KeyStrategy)
	case suggested:
		fmt.Println("Configured strategy matches the suggestion.")
	default:
		fmt.Printf("Configured strategy is %q.\n", configured)
	}
	return nil
}
