package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// identifierPattern matches registry identifiers such as "bottomnav" or
// "fresh-clean".
var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateIdentifier checks that a user-supplied registry key is well formed
// before it is looked up. It does not check membership.
func ValidateIdentifier(code Code, kind, id string) error {
	if id == "" {
		return New(code, "%s cannot be empty", kind)
	}
	if len(id) > 64 {
		return New(code, "%s too long (max 64 characters)", kind)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(code, "%s contains invalid control characters", kind)
		}
	}
	if !identifierPattern.MatchString(id) {
		return New(code, "%s %q must be lowercase letters, digits or dashes", kind, id)
	}
	return nil
}

// ValidatePath validates an operator-supplied file path (content or config).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - No ".." segments once cleaned
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > 1024 {
		return New(ErrCodeInvalidPath, "path too long (max 1024 characters)")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}
	for _, seg := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if seg == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain parent directory references")
		}
	}
	return nil
}
