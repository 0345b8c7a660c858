package validator

import (
	"fmt"
	"regexp"
)

// Fixed per-rule error messages. These are a contract with UI code and its
// tests; change them only together with every caller.
const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email address"
	MsgPhone    = "Please enter a valid phone number"
	MsgPattern  = "Invalid format"
)

// MinLengthMessage returns the error message for a failed MinLength check.
func MinLengthMessage(n int) string {
	return fmt.Sprintf("Must be at least %d characters long", n)
}

// MaxLengthMessage returns the error message for a failed MaxLength check.
func MaxLengthMessage(n int) string {
	return fmt.Sprintf("Must be no more than %d characters long", n)
}

var (
	// Local part, @, domain with at least one dot. Matches what the web
	// forms accept rather than full RFC 5322.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional leading +, then 1-16 digits not starting with zero
	// (E.164-style international numbers).
	phoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// CustomFunc runs after all built-in checks. It returns an error message for
// a failed check or the empty string for a pass. It is the only check that
// still runs for empty optional values, so implementations must tolerate "".
type CustomFunc func(value string) string

// Rule declares the checks to apply to a single field's value. The zero
// value applies no checks. Unset fields are skipped, never errors.
type Rule struct {
	Required  bool
	Email     bool
	Phone     bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    CustomFunc
}

// Normalize returns a copy of the rule with nonsensical configuration
// defused so evaluation can never misbehave: negative lengths become zero,
// which means "unset". Validate normalizes internally; callers only need
// this when constructing rules from untrusted input.
func (r Rule) Normalize() Rule {
	if r.MinLength < 0 {
		r.MinLength = 0
	}
	if r.MaxLength < 0 {
		r.MaxLength = 0
	}
	return r
}

// RuleSet maps field names to their rules. Fields without an entry are not
// validated.
type RuleSet map[string]Rule
