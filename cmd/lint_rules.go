package cmd

import (
	"fmt"
	"os"

	"github.com/mujasoft/NaturalCommitLint/common"
	"github.com/mujasoft/NaturalCommitLint/git"
	"github.com/mujasoft/NaturalCommitLint/linter"
	"github.com/mujasoft/NaturalCommitLint/llm"
	"github.com/mujasoft/NaturalCommitLint/logger"
	"github.com/mujasoft/NaturalCommitLint/prompt"
	"github.com/mujasoft/NaturalCommitLint/render"
	"github.com/spf13/cobra"
)

var lintRulesCmd = &cobra.Command{
	Use:   "lint-rules",
	Short: "Lint the HEAD commit message against your own rules file",
	Long: `Judge the HEAD commit message with an LLM using a plain-text rules file.
The rules are embedded in the prompt verbatim and the model closes its
reply with a literal verdict line (LINT_PASS or LINT_FAIL).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()

		repoDir, _ := cmd.Flags().GetString("repo-dir")
		output, _ := cmd.Flags().GetString("output")
		providerName := stringFlagOr(cmd, "provider", settings.Provider)
		modelName := stringFlagOr(cmd, "model", settings.Model)
		rulesFile := stringFlagOr(cmd, "rules-file", settings.RulesFile)

		if err := git.ValidateSetup(repoDir, git.MarkerGitDir); err != nil {
			return err
		}

		rules, err := os.ReadFile(rulesFile)
		if err != nil {
			return fmt.Errorf("failed to read rules file: %w", err)
		}

		_, repo := git.OwnerAndRepo(repoDir)

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

		pipeline := linter.NewPipeline(llmClient, linter.FreeFormStrategy{},
			linter.WithAttempts(settings.Attempts))

		result, err := pipeline.Run(llm.Request{
			SystemPrompt: prompt.GetFreeFormSystemPrompt(),
			UserPrompt:   prompt.GetFreeFormPrompt(headCommit, string(rules)),
		})
		if err != nil {
			return fmt.Errorf("could not get a verdict: %w", err)
		}

		fmt.Println(render.LintOutput(result.Raw, repo))
		fmt.Println()
		fmt.Println(render.VerdictBanner(result.Passed))

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

func init() {
	rootCmd.AddCommand(lintRulesCmd)

	lintRulesCmd.Flags().StringP("repo-dir", "r", "", "Location of where the repo is cloned")
	lintRulesCmd.Flags().StringP("rules-file", "f", "rules.txt", "Location of your rules as a txt file")
	lintRulesCmd.Flags().StringP("output", "o", "", "Append the raw LLM output to this file")
	lintRulesCmd.Flags().StringP("model", "m", "llama3", "Name of model")
	lintRulesCmd.Flags().StringP("provider", "p", "ollama", "LLM provider (ollama, openai, anthropic)")
}
