package cmd

import (
	"fmt"

	"github.com/mujasoft/NaturalCommitLint/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of NaturalCommitLint`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("NaturalCommitLint v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
