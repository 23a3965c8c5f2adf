package types

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateIDPresent ensures an identifier path segment is not blank.
func ValidateIDPresent(id, name string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s is required", name)
	}
	if strings.ContainsAny(id, "/?#") {
		return fmt.Errorf("%s contains invalid characters", name)
	}
	return nil
}

const passwordSpecials = "!@#$%^&*(),.?\":{}|<>_-+=[]\\/`~;'"

// PasswordRules is the per-rule outcome of CheckPassword.
type PasswordRules struct {
	MinLength    bool
	HasUppercase bool
	HasLowercase bool
	HasNumber    bool
	HasSpecial   bool
}

// Valid reports whether every rule passed.
func (r PasswordRules) Valid() bool {
	return r.MinLength && r.HasUppercase && r.HasLowercase && r.HasNumber && r.HasSpecial
}

// Missing lists the human-readable names of failing rules.
func (r PasswordRules) Missing() []string {
	var out []string
	if !r.MinLength {
		out = append(out, "at least 8 characters")
	}
	if !r.HasUppercase {
		out = append(out, "an uppercase letter")
	}
	if !r.HasLowercase {
		out = append(out, "a lowercase letter")
	}
	if !r.HasNumber {
		out = append(out, "a number")
	}
	if !r.HasSpecial {
		out = append(out, "a special character")
	}
	return out
}

// CheckPassword evaluates the registration password rules.
func CheckPassword(pw string) PasswordRules {
	r := PasswordRules{MinLength: len(pw) >= 8}
	for _, c := range pw {
		switch {
		case c >= 'A' && c <= 'Z':
			r.HasUppercase = true
		case c >= 'a' && c <= 'z':
			r.HasLowercase = true
		case unicode.IsDigit(c) && c < unicode.MaxASCII:
			r.HasNumber = true
		case strings.ContainsRune(passwordSpecials, c):
			r.HasSpecial = true
		}
	}
	return r
}
