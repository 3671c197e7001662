package common

import (
	"os"
	"path/filepath"

	"github.com/mujasoft/NaturalCommitLint/logger"
	"gopkg.in/yaml.v3"
)

// Settings holds tool-wide defaults. Command-line flags override these.
type Settings struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	Attempts   int    `yaml:"attempts"`
	MaxTokens  int    `yaml:"max_tokens"`
	APITimeout int    `yaml:"api_timeout"`
	RulesFile  string `yaml:"rules_file"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Provider:   "ollama",
		Model:      "llama3",
		Attempts:   3,
		MaxTokens:  4000,
		APITimeout: 60,
		RulesFile:  "rules.txt",
	}
}

// WithYamlFile loads settings from a naturalcommitlint.yml found in the
// working directory or below it, falling back to defaults.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"naturalcommitlint.yml", "naturalcommitlint.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath == "" {
		logger.Debugf("No settings file found. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err == nil {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
		} else {
			logger.Infof("Using settings from YAML file: %s", filePath)
		}
	}
	return settings
}
