package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"ramal/internal/domain"
)

// validBranchNameChars matches valid characters for git branch names
// Allows: alphanumeric, hyphens, underscores, dots, slashes
var validBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// invalidBranchNameChars matches characters that get replaced with
// hyphens during sanitization: git-prohibited characters, shell
// metacharacters, and other path-hostile punctuation.
var invalidBranchNameChars = regexp.MustCompile(`[\s~^:?*\[\]\\{}#@()&|;<>$` + "`" + `'"]+`)

// consecutiveHyphens matches two or more consecutive hyphens
var consecutiveHyphens = regexp.MustCompile(`-{2,}`)

// validateBranchName checks if a branch name is valid according to git
// rules, slightly stricter than git-check-ref-format because ramal
// passes names to shell-executed git commands and joins them into
// filesystem paths.
//
// Rules enforced:
// - Cannot start with '.', '/' or '-'
// - Cannot end with '.lock', '.', '/', or '-'
// - Cannot contain '..', '//' or '@{'
// - Cannot contain control characters
// - Only alphanumeric, '.', '_', '-', '/' allowed
func validateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidBranchName)
	}

	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: cannot start with '.'", domain.ErrInvalidBranchName)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: cannot start with '/'", domain.ErrInvalidBranchName)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: cannot start with '-'", domain.ErrInvalidBranchName)
	}

	if strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("%w: cannot end with '.lock'", domain.ErrInvalidBranchName)
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("%w: cannot end with '.'", domain.ErrInvalidBranchName)
	}
	if strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: cannot end with '/'", domain.ErrInvalidBranchName)
	}
	if strings.HasSuffix(name, "-") {
		return fmt.Errorf("%w: cannot end with '-'", domain.ErrInvalidBranchName)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: cannot contain '..'", domain.ErrInvalidBranchName)
	}
	if strings.Contains(name, "//") {
		return fmt.Errorf("%w: cannot contain '//'", domain.ErrInvalidBranchName)
	}
	if strings.Contains(name, "@{") {
		return fmt.Errorf("%w: cannot contain '@{'", domain.ErrInvalidBranchName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: cannot contain control characters", domain.ErrInvalidBranchName)
		}
	}

	if !validBranchNameChars.MatchString(name) {
		return fmt.Errorf("%w: only alphanumeric, '.', '_', '-', '/' allowed", domain.ErrInvalidBranchName)
	}

	if name == "@" {
		return fmt.Errorf("%w: cannot be '@'", domain.ErrInvalidBranchName)
	}

	return nil
}

// sanitizeBranchName transforms free-form input into a valid branch
// name. Used for the suggested-name hint in the create form; the name
// the user finally submits still goes through validateBranchName.
func sanitizeBranchName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: cannot sanitize empty string", domain.ErrInvalidBranchName)
	}

	result := strings.ToLower(name)

	var builder strings.Builder
	for _, r := range result {
		if !unicode.IsControl(r) {
			builder.WriteRune(r)
		}
	}
	result = builder.String()

	result = invalidBranchNameChars.ReplaceAllString(result, "-")
	result = strings.ReplaceAll(result, "..", "-")
	result = strings.ReplaceAll(result, "//", "/")
	result = strings.TrimLeft(result, "./-")
	result = strings.TrimSuffix(result, ".lock")
	result = strings.TrimRight(result, "./-")
	result = consecutiveHyphens.ReplaceAllString(result, "-")

	if result == "" || result == "@" {
		return "", fmt.Errorf("%w: sanitization left nothing usable", domain.ErrInvalidBranchName)
	}

	return result, nil
}
