package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a git repo with an initial commit for testing
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test"), 0644))
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// runGit runs a git command in dir and fails the test on error
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return string(out)
}

// commitFile adds a commit touching the named file
func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", "update "+name)
}

// setUpstream wires branch to a fake remote-tracking ref without any
// network. The tracking ref starts at the branch's current tip and can
// be moved independently with moveUpstream.
func setUpstream(t *testing.T, dir, branch string) {
	t.Helper()
	tip := strings.TrimSpace(runGit(t, dir, "rev-parse", "refs/heads/"+branch))
	runGit(t, dir, "config", "remote.origin.url", dir)
	runGit(t, dir, "config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*")
	runGit(t, dir, "update-ref", "refs/remotes/origin/"+branch, tip)
	runGit(t, dir, "config", "branch."+branch+".remote", "origin")
	runGit(t, dir, "config", "branch."+branch+".merge", "refs/heads/"+branch)
}

// moveUpstream points the fake remote-tracking ref at a commit
func moveUpstream(t *testing.T, dir, branch, commit string) {
	t.Helper()
	runGit(t, dir, "update-ref", "refs/remotes/origin/"+branch, commit)
}
