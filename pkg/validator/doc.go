// Package validator implements the declarative form-validation engine shared
// by every page that submits user input: login, registration, order creation,
// and profile forms.
//
// A field is checked against a Rule, a plain struct whose zero value means
// "no checks". Rules are evaluated in a fixed order with first-failure-wins
// semantics, and results are returned as data; the package never panics and
// never returns a Go error for a failed check.
//
// # Evaluation order
//
// required → email → phone → minLength → maxLength → pattern → custom.
//
// A value failing required skips everything else. An empty value on an
// optional field passes every built-in check; only a Custom callback still
// runs (and must tolerate empty input), so optional fields stay valid until
// the user types something.
//
// # Usage
//
//	res := validator.Validate(email, validator.Rule{Required: true, Email: true})
//	if !res.Valid {
//	    showError(res.Error)
//	}
//
// Whole forms are validated field by field:
//
//	form := validator.ValidateForm(values, validator.RuleSet{
//	    "email":    {Required: true, Email: true},
//	    "password": {Required: true, MinLength: 8},
//	})
//
// Error messages are a fixed contract with the UI layer and its tests; see
// the Msg* constants.
//
// # Declarative rule sets
//
// Rule sets can be versioned as YAML next to the pages that use them and
// loaded with RuleSetFromYAML. Custom callbacks are code-only and cannot be
// expressed in YAML.
package validator
