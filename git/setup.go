package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Repository markers checked before a lint run. Structured lint expects a
// README.md, rules-file lint only needs the repo to be a git checkout.
const (
	MarkerReadme = "README.md"
	MarkerGitDir = ".git"
)

// ValidateSetup fails when repoDir is missing, does not exist, or lacks the
// expected marker. These are fatal setup errors: the caller should exit.
func ValidateSetup(repoDir, marker string) error {
	if repoDir == "" {
		return errors.New("you must specify a repo directory")
	}

	if _, err := os.Stat(repoDir); err != nil {
		return fmt.Errorf("%q does not exist", repoDir)
	}

	if _, err := os.Stat(filepath.Join(repoDir, marker)); err != nil {
		if marker == MarkerGitDir {
			return fmt.Errorf("%q is not a git repo", repoDir)
		}
		return fmt.Errorf("please ensure there is a %s in your repo", marker)
	}

	return nil
}
