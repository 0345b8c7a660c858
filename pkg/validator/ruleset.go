package validator

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidRuleSet is returned when rule set data cannot be parsed.
	ErrInvalidRuleSet = errors.New("invalid rule set")

	// ErrInvalidPattern is returned when a rule's pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ruleSpec is the YAML representation of a Rule. Custom callbacks are
// code-only and have no YAML form.
type ruleSpec struct {
	Required  bool   `yaml:"required"`
	Email     bool   `yaml:"email"`
	Phone     bool   `yaml:"phone"`
	MinLength int    `yaml:"minLength"`
	MaxLength int    `yaml:"maxLength"`
	Pattern   string `yaml:"pattern"`
}

func (s ruleSpec) toRule(field string) (Rule, error) {
	rule := Rule{
		Required:  s.Required,
		Email:     s.Email,
		Phone:     s.Phone,
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
	}

	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: field %q: %w", ErrInvalidPattern, field, err)
		}
		rule.Pattern = re
	}

	return rule.Normalize(), nil
}

// RuleSetFromYAML parses a field-name → rule mapping from YAML, so form
// contracts can be versioned next to the pages that use them:
//
//	email:
//	  required: true
//	  email: true
//	password:
//	  required: true
//	  minLength: 8
//
// Patterns are compiled eagerly; a pattern that does not compile fails the
// whole load rather than surfacing later during form submission.
func RuleSetFromYAML(data []byte) (RuleSet, error) {
	var specs map[string]ruleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	rules := make(RuleSet, len(specs))
	for field, spec := range specs {
		rule, err := spec.toRule(field)
		if err != nil {
			return nil, err
		}
		rules[field] = rule
	}

	return rules, nil
}

// MultiRuleSetFromYAML parses a document holding several named rule sets,
// one per form:
//
//	login:
//	  email: {required: true, email: true}
//	register:
//	  phone: {phone: true}
func MultiRuleSetFromYAML(data []byte) (map[string]RuleSet, error) {
	var doc map[string]map[string]ruleSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	sets := make(map[string]RuleSet, len(doc))
	for name, specs := range doc {
		rules := make(RuleSet, len(specs))
		for field, spec := range specs {
			rule, err := spec.toRule(field)
			if err != nil {
				return nil, fmt.Errorf("form %q: %w", name, err)
			}
			rules[field] = rule
		}
		sets[name] = rules
	}

	return sets, nil
}
