package cmd

import (
	"fmt"
	"strconv"

	"github.com/mujasoft/NaturalCommitLint/common"
	"github.com/mujasoft/NaturalCommitLint/extract"
	"github.com/mujasoft/NaturalCommitLint/git"
	"github.com/mujasoft/NaturalCommitLint/github"
	"github.com/mujasoft/NaturalCommitLint/linter"
	"github.com/mujasoft/NaturalCommitLint/llm"
	"github.com/mujasoft/NaturalCommitLint/logger"
	"github.com/mujasoft/NaturalCommitLint/prompt"
	"github.com/mujasoft/NaturalCommitLint/render"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the HEAD commit message against the built-in rules",
	Long: `Judge the HEAD commit message with an LLM using the built-in rule set
(title length, Code Review/PR metadata lines, blank line after title).
The model answers with a structured JSON verdict that is validated and
rendered as a report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()

		repoDir, _ := cmd.Flags().GetString("repo-dir")
		output, _ := cmd.Flags().GetString("output")
		verifyPR, _ := cmd.Flags().GetBool("verify-pr")
		providerName := stringFlagOr(cmd, "provider", settings.Provider)
		modelName := stringFlagOr(cmd, "model", settings.Model)

		if err := git.ValidateSetup(repoDir, git.MarkerReadme); err != nil {
			return err
		}

		owner, repo := git.OwnerAndRepo(repoDir)

		gitClient := git.NewClient(git.NewDefaultRunner(repoDir))
		headCommit, err := gitClient.HeadCommit()
		if err != nil {
			return err
		}

		fmt.Println(render.HeadCommit(headCommit, repo))
		fmt.Println()

		llmClient, err := llm.NewLLM(providerName, modelName,
			llm.WithMaxTokens(settings.MaxTokens),
			llm.WithAPITimeout(settings.APITimeout),
		)
		if err != nil {
			return err
		}

		logger.Infof("Analyzing commit message with %s (%s)", providerName, modelName)

		pipeline := linter.NewPipeline(llmClient, linter.StructuredStrategy{},
			linter.WithAttempts(settings.Attempts))

		result, err := pipeline.Run(llm.Request{
			SystemPrompt: prompt.GetStructuredSystemPrompt(),
			UserPrompt:   prompt.GetStructuredPrompt(headCommit),
		})
		if err != nil {
			return fmt.Errorf("could not get a verdict: %w", err)
		}

		fmt.Println(render.Report(*result.Structured))

		if found, changes := extract.ChangesMade(result.Raw); found {
			fmt.Println()
			fmt.Println(render.Changes(changes))
		}

		if verifyPR {
			verifyPullRequest(owner, repo, result.Structured.FixedMessage.PR)
		}

		if output != "" {
			if err := appendToLog(output, result.Raw); err != nil {
				return err
			}
		}

		fmt.Println()
		fmt.Println(render.Disclaimer())
		return nil
	},
}

// verifyPullRequest checks the PR number from the verdict against GitHub.
// Purely advisory: failures are logged, never fatal.
func verifyPullRequest(owner, repo, pr string) {
	if owner == "" || repo == "" {
		logger.Warn("Skipping PR verification: could not determine GitHub owner/repo.")
		return
	}

	number, err := strconv.Atoi(pr)
	if err != nil {
		logger.Infof("Skipping PR verification: no numeric PR reference (%q)", pr)
		return
	}

	client, err := github.NewClient()
	if err != nil {
		logger.Warnf("Skipping PR verification: %v", err)
		return
	}

	exists, err := client.PRExists(owner, repo, number)
	if err != nil {
		logger.Warnf("PR verification failed: %v", err)
		return
	}

	if exists {
		fmt.Printf("\nPR #%d exists on %s/%s.\n", number, owner, repo)
	} else {
		fmt.Printf("\nPR #%d was not found on %s/%s.\n", number, owner, repo)
	}
}

// stringFlagOr returns the flag value when set, otherwise the fallback from
// the settings file.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringP("repo-dir", "r", "", "Location of where the repo is cloned")
	lintCmd.Flags().StringP("output", "o", "", "Append the raw LLM output to this file")
	lintCmd.Flags().StringP("model", "m", "llama3", "Name of model")
	lintCmd.Flags().StringP("provider", "p", "ollama", "LLM provider (ollama, openai, anthropic)")
	lintCmd.Flags().Bool("verify-pr", false, "Verify the referenced PR number exists on GitHub")
}
