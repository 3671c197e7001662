package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseGitHubURL(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
	}{
		{"git@github.com:acme/widgets.git", "acme", "widgets"},
		{"git@github.com:acme/widgets", "acme", "widgets"},
		{"https://github.com/acme/widgets", "acme", "widgets"},
		{"https://github.com/acme/widgets.git", "acme", "widgets"},
		{"https://github.com/acme/my.repo", "acme", "my.repo"},
		{"git@github.com:acme/my.repo.git", "acme", "my.repo"},
		{"https://gitlab.com/acme/widgets.git", "", ""},
		{"not a url at all", "", ""},
	}

	for _, tt := range tests {
		owner, repo := ParseGitHubURL(tt.url)
		if owner != tt.wantOwner || repo != tt.wantRepo {
			t.Errorf("ParseGitHubURL(%q) = (%q, %q), want (%q, %q)",
				tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
		}
	}
}

func TestOriginURL(t *testing.T) {
	config := `[core]
	repositoryformatversion = 0
	filemode = true
[remote "upstream"]
	url = https://github.com/other/fork.git
	fetch = +refs/heads/*:refs/remotes/upstream/*
[remote "origin"]
	url = git@github.com:acme/widgets.git
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	remote = origin
`

	url, ok := originURL(config)
	if !ok {
		t.Fatal("Expected origin url to be found")
	}
	if url != "git@github.com:acme/widgets.git" {
		t.Errorf("Expected origin url, got %q", url)
	}
}

func TestOriginURLMissing(t *testing.T) {
	config := "[core]\n\tfilemode = true\n"

	if _, ok := originURL(config); ok {
		t.Error("Expected no origin url in config without remotes")
	}
}

func TestOwnerAndRepo(t *testing.T) {
	repoDir := t.TempDir()
	gitDir := filepath.Join(repoDir, ".git")
	if err := os.Mkdir(gitDir, 0o755); err != nil {
		t.Fatalf("Failed to create .git dir: %v", err)
	}

	config := "[remote \"origin\"]\n\turl = https://github.com/acme/widgets\n"
	if err := os.WriteFile(filepath.Join(gitDir, "config"), []byte(config), 0o644); err != nil {
		t.Fatalf("Failed to write git config: %v", err)
	}

	owner, repo := OwnerAndRepo(repoDir)
	if owner != "acme" || repo != "widgets" {
		t.Errorf("Expected (acme, widgets), got (%q, %q)", owner, repo)
	}
}

func TestOwnerAndRepoMissingConfig(t *testing.T) {
	owner, repo := OwnerAndRepo(t.TempDir())
	if owner != "" || repo != "" {
		t.Errorf("Expected empty owner/repo for missing config, got (%q, %q)", owner, repo)
	}
}

func TestValidateSetup(t *testing.T) {
	if err := ValidateSetup("", MarkerGitDir); err == nil {
		t.Error("Expected error for empty repo dir")
	}

	if err := ValidateSetup("/no/such/directory", MarkerGitDir); err == nil {
		t.Error("Expected error for non-existent repo dir")
	}

	repoDir := t.TempDir()
	if err := ValidateSetup(repoDir, MarkerGitDir); err == nil {
		t.Error("Expected error when .git marker is missing")
	}

	if err := os.Mkdir(filepath.Join(repoDir, ".git"), 0o755); err != nil {
		t.Fatalf("Failed to create .git dir: %v", err)
	}
	if err := ValidateSetup(repoDir, MarkerGitDir); err != nil {
		t.Errorf("Expected no error for valid repo, got %v", err)
	}
}
