package validator

import (
	"strings"
	"unicode/utf8"
)

// Result reports the outcome of validating a single field.
// Valid is true iff Error is empty.
type Result struct {
	Valid bool
	Error string
}

// FormResult reports the outcome of validating a whole form.
// Errors holds a message per failing field only.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// Validate checks value against rule and returns the first failure, if any.
// Checks run in a fixed order: required, email, phone, minLength, maxLength,
// pattern, custom. Length checks count runes, matching what users perceive
// as characters.
func Validate(value string, rule Rule) Result {
	rule = rule.Normalize()

	if rule.Required && strings.TrimSpace(value) == "" {
		return fail(MsgRequired)
	}

	// An empty optional value is valid as-is; only Custom gets a say.
	if value == "" {
		if rule.Custom != nil {
			if msg := rule.Custom(value); msg != "" {
				return fail(msg)
			}
		}
		return pass()
	}

	if rule.Email && !emailRegex.MatchString(value) {
		return fail(MsgEmail)
	}

	if rule.Phone && !phoneRegex.MatchString(stripPhoneSeparators(value)) {
		return fail(MsgPhone)
	}

	if rule.MinLength > 0 && utf8.RuneCountInString(value) < rule.MinLength {
		return fail(MinLengthMessage(rule.MinLength))
	}

	if rule.MaxLength > 0 && utf8.RuneCountInString(value) > rule.MaxLength {
		return fail(MaxLengthMessage(rule.MaxLength))
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return fail(MsgPattern)
	}

	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			return fail(msg)
		}
	}

	return pass()
}

// ValidateForm validates each field that has a rule, independently of the
// others. Valid is true iff every validated field passed; Errors contains
// only the failing fields. Fields present in values but absent from rules
// are ignored; fields with a rule but missing from values validate as empty.
//
// Cross-field checks (password confirmation and the like) are expressed as
// Custom callbacks closing over the other field's value.
func ValidateForm(values map[string]string, rules RuleSet) FormResult {
	res := FormResult{
		Valid:  true,
		Errors: make(map[string]string),
	}

	for field, rule := range rules {
		fieldRes := Validate(values[field], rule)
		if !fieldRes.Valid {
			res.Valid = false
			res.Errors[field] = fieldRes.Error
		}
	}

	return res
}

// stripPhoneSeparators removes the spaces and dashes users commonly type in
// phone numbers before the pattern check.
func stripPhoneSeparators(value string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(value)
}
