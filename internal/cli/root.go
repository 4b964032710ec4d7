package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubescan",
	Short: "Resolve noisy cube scans into facelet strings",
	Long: `Cubescan turns 54 raw BGR facelet samples plus a scoring table into
the 54-character facelet string of a physically realizable Rubik's
cube, using constraint propagation with backtracking.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}
