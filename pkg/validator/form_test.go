package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbadelivery/deliverykit/pkg/validator"
)

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("aggregates failures across fields", func(t *testing.T) {
		values := map[string]string{"email": "bad", "pw": "123"}
		rules := validator.RuleSet{
			"email": {Email: true},
			"pw":    {MinLength: 8},
		}

		res := validator.ValidateForm(values, rules)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
		assert.Equal(t, validator.MsgEmail, res.Errors["email"])
		assert.Equal(t, validator.MinLengthMessage(8), res.Errors["pw"])
	})

	t.Run("valid form has empty errors map", func(t *testing.T) {
		values := map[string]string{"email": "user@example.com", "pw": "supersecret"}
		rules := validator.RuleSet{
			"email": {Required: true, Email: true},
			"pw":    {Required: true, MinLength: 8},
		}

		res := validator.ValidateForm(values, rules)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("fields without rules are ignored", func(t *testing.T) {
		values := map[string]string{"email": "user@example.com", "free_text": "@@@@"}
		rules := validator.RuleSet{"email": {Email: true}}

		res := validator.ValidateForm(values, rules)
		assert.True(t, res.Valid)
	})

	t.Run("ruled field missing from values validates as empty", func(t *testing.T) {
		rules := validator.RuleSet{"email": {Required: true}}

		res := validator.ValidateForm(map[string]string{}, rules)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.MsgRequired, res.Errors["email"])
	})

	t.Run("cross-field check via custom closure", func(t *testing.T) {
		values := map[string]string{"password": "secret123", "confirm": "secret124"}
		rules := validator.RuleSet{
			"password": {Required: true, MinLength: 8},
			"confirm": {Custom: func(v string) string {
				if v != values["password"] {
					return "Passwords do not match"
				}
				return ""
			}},
		}

		res := validator.ValidateForm(values, rules)
		assert.False(t, res.Valid)
		assert.Equal(t, "Passwords do not match", res.Errors["confirm"])
		assert.NotContains(t, res.Errors, "password")
	})

	t.Run("nil maps are safe", func(t *testing.T) {
		res := validator.ValidateForm(nil, nil)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})
}
