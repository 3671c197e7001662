package git

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mujasoft/NaturalCommitLint/logger"
)

// Matches both HTTPS and SSH GitHub remote URLs.
var githubRemoteRe = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:)([^/]+)/([^/]+?)(?:\.git)?$`)

// OwnerAndRepo reads the repository's .git/config and returns the GitHub
// owner and repository name of the origin remote. Both come back empty when
// the config is missing, has no origin remote, or points somewhere other
// than GitHub. That outcome is recoverable: linting works without it.
func OwnerAndRepo(repoDir string) (string, string) {
	configPath := filepath.Join(repoDir, ".git", "config")

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Warnf("File not found: %s", configPath)
		return "", ""
	}

	url, ok := originURL(string(data))
	if !ok {
		logger.Warn("Could not find 'origin' remote in git config.")
		return "", ""
	}

	owner, repo := ParseGitHubURL(url)
	if owner == "" {
		logger.Warn("Could not parse GitHub owner/repo from URL.")
	}
	return owner, repo
}

// ParseGitHubURL extracts (owner, repo) from a GitHub remote URL. Non-GitHub
// URLs yield two empty strings.
func ParseGitHubURL(url string) (string, string) {
	match := githubRemoteRe.FindStringSubmatch(strings.TrimSpace(url))
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

// originURL scans the ini-style git config for the url key of the
// [remote "origin"] section.
func originURL(config string) (string, bool) {
	inOrigin := false

	scanner := bufio.NewScanner(strings.NewReader(config))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}

		if !inOrigin {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value), true
		}
	}

	return "", false
}
