package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramal/internal/domain"
)

func TestValidateBranchName_EmptyName(t *testing.T) {
	err := validateBranchName("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateBranchName_InvalidPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"starts with dot", ".hidden", "start with '.'"},
		{"starts with slash", "/path", "start with '/'"},
		{"starts with hyphen", "-feature", "start with '-'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateBranchName_InvalidSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"ends with .lock", "branch.lock", ".lock"},
		{"ends with dot", "branch.", "end with '.'"},
		{"ends with slash", "branch/", "end with '/'"},
		{"ends with hyphen", "branch-", "end with '-'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateBranchName_InvalidSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"double dot", "feature..branch", "'..'"},
		{"double slash", "feature//branch", "'//'"},
		{"at brace", "branch@{0}", "'@{'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateBranchName_ControlCharacters(t *testing.T) {
	err := validateBranchName("feature\x00branch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control characters")
}

func TestValidateBranchName_InvalidCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"space", "feature branch"},
		{"tilde", "feature~1"},
		{"caret", "feature^1"},
		{"colon", "feature:1"},
		{"question mark", "feature?"},
		{"asterisk", "feature*"},
		{"bracket", "feature[0]"},
		{"backslash", "feature\\path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
		})
	}
}

func TestValidateBranchName_AtSymbolAlone(t *testing.T) {
	err := validateBranchName("@")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
}

func TestValidateBranchName_ValidNames(t *testing.T) {
	tests := []string{
		"main",
		"feature/add-tests",
		"fix_bug_123",
		"release-1.0.0",
		"user/feature.name",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, validateBranchName(name))
		})
	}
}

func TestSanitizeBranchName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Feature/Add-Tests", "feature/add-tests"},
		{"spaces to hyphens", "fix login bug", "fix-login-bug"},
		{"collapses hyphen runs", "fix  --  it", "fix-it"},
		{"strips leading junk", "./-feature", "feature"},
		{"strips trailing junk", "feature-./", "feature"},
		{"drops lock suffix", "feature.lock", "feature"},
		{"shell metacharacters", "what? * ($HOME)", "what-home"},
		{"double dots", "a..b", "a-b"},
		{"double slashes", "a//b", "a/b"},
		{"already valid", "feature/add-tests", "feature/add-tests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeBranchName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeBranchName_NothingUsable(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only junk", "?? ** $$"},
		{"only separators", "./-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sanitizeBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBranchName)
		})
	}
}
