package cmd

import (
	"github.com/mujasoft/NaturalCommitLint/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "naturalcommitlint",
	Short: "AI powered linter for git commit messages",
	Long: `NaturalCommitLint judges the HEAD commit message of a repository against
formatting and content rules, using a large language model as the judge.
It can check the built-in rule set or a rules file you supply.
All verdicts are advisory and should be double-checked by a human.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
