package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsNil(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Nil(t, cfg, "missing config should trigger setup, not error")
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("worktree_dir = \"worktrees\"\n"), 0644))

	cfg, err := Load(dir)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "worktrees", cfg.WorktreeDir)
}

func TestLoad_MissingWorktreeDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0644))

	_, err := Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "worktree_dir is required")
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("worktree_dir = [broken"), 0644))

	_, err := Load(dir)

	require.Error(t, err)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(dir, &Config{WorktreeDir: ".worktrees"}))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ".worktrees", cfg.WorktreeDir)
}

func TestResolveWorktreeDir(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		repoRoot string
		want     string
	}{
		{"relative resolves against repo root", "worktrees", "/repo", "/repo/worktrees"},
		{"absolute kept as is", "/srv/worktrees", "/repo", "/srv/worktrees"},
		{"dot segments cleaned", "./wt/../trees", "/repo", "/repo/trees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{WorktreeDir: tt.dir}
			assert.Equal(t, tt.want, cfg.ResolveWorktreeDir(tt.repoRoot))
		})
	}
}
