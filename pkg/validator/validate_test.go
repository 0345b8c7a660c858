package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbadelivery/deliverykit/pkg/validator"
)

func TestValidateRequired(t *testing.T) {
	t.Parallel()

	t.Run("fails for empty string", func(t *testing.T) {
		res := validator.Validate("", validator.Rule{Required: true})
		assert.False(t, res.Valid)
		assert.Equal(t, "This field is required", res.Error)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		res := validator.Validate("   ", validator.Rule{Required: true})
		assert.False(t, res.Valid)
		assert.Equal(t, validator.MsgRequired, res.Error)
	})

	t.Run("passes for non-empty string", func(t *testing.T) {
		res := validator.Validate("hello", validator.Rule{Required: true})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
	})

	t.Run("required failure skips later checks", func(t *testing.T) {
		res := validator.Validate("", validator.Rule{Required: true, Email: true, MinLength: 8})
		assert.Equal(t, validator.MsgRequired, res.Error)
	})
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid address", func(t *testing.T) {
		res := validator.Validate("a@b.com", validator.Rule{Email: true})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
	})

	t.Run("rejects address without at sign", func(t *testing.T) {
		res := validator.Validate("not-an-email", validator.Rule{Email: true})
		assert.False(t, res.Valid)
		assert.Equal(t, "Please enter a valid email address", res.Error)
	})

	t.Run("rejects domain without dot", func(t *testing.T) {
		res := validator.Validate("user@localhost", validator.Rule{Email: true})
		assert.False(t, res.Valid)
		assert.Equal(t, validator.MsgEmail, res.Error)
	})

	t.Run("rejects address with spaces", func(t *testing.T) {
		res := validator.Validate("user name@example.com", validator.Rule{Email: true})
		assert.False(t, res.Valid)
	})

	t.Run("empty optional value passes", func(t *testing.T) {
		res := validator.Validate("", validator.Rule{Email: true})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
	})
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	valid := []string{"+251911223344", "911223344", "+1 555 123-4567"}
	for _, number := range valid {
		t.Run("accepts "+number, func(t *testing.T) {
			res := validator.Validate(number, validator.Rule{Phone: true})
			assert.True(t, res.Valid)
		})
	}

	invalid := []string{"0911223344", "phone", "+", "+123456789012345678"}
	for _, number := range invalid {
		t.Run("rejects "+number, func(t *testing.T) {
			res := validator.Validate(number, validator.Rule{Phone: true})
			assert.False(t, res.Valid)
			assert.Equal(t, validator.MsgPhone, res.Error)
		})
	}
}

func TestValidateLength(t *testing.T) {
	t.Parallel()

	t.Run("fails below minimum", func(t *testing.T) {
		res := validator.Validate("123", validator.Rule{MinLength: 8})
		assert.False(t, res.Valid)
		assert.Equal(t, "Must be at least 8 characters long", res.Error)
	})

	t.Run("passes at minimum", func(t *testing.T) {
		res := validator.Validate("12345678", validator.Rule{MinLength: 8})
		assert.True(t, res.Valid)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		res := validator.Validate("123456", validator.Rule{MaxLength: 5})
		assert.False(t, res.Valid)
		assert.Equal(t, "Must be no more than 5 characters long", res.Error)
	})

	t.Run("passes at maximum", func(t *testing.T) {
		res := validator.Validate("12345", validator.Rule{MaxLength: 5})
		assert.True(t, res.Valid)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		res := validator.Validate("ሰላም", validator.Rule{MaxLength: 3})
		assert.True(t, res.Valid)
	})

	t.Run("negative lengths are inert", func(t *testing.T) {
		res := validator.Validate("x", validator.Rule{MinLength: -3, MaxLength: -1})
		assert.True(t, res.Valid)
	})
}

func TestValidatePattern(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`^[0-9]+$`)

	t.Run("fails on mismatch", func(t *testing.T) {
		res := validator.Validate("abc", validator.Rule{Pattern: digits})
		assert.False(t, res.Valid)
		assert.Equal(t, validator.MsgPattern, res.Error)
	})

	t.Run("passes on match", func(t *testing.T) {
		res := validator.Validate("12345", validator.Rule{Pattern: digits})
		assert.True(t, res.Valid)
	})
}

func TestValidateCustom(t *testing.T) {
	t.Parallel()

	t.Run("failure message is returned verbatim", func(t *testing.T) {
		rule := validator.Rule{Custom: func(v string) string {
			if !strings.HasPrefix(v, "ORD-") {
				return "Order code must start with ORD-"
			}
			return ""
		}}

		res := validator.Validate("12345", rule)
		assert.False(t, res.Valid)
		assert.Equal(t, "Order code must start with ORD-", res.Error)
	})

	t.Run("runs even for empty optional value", func(t *testing.T) {
		called := false
		rule := validator.Rule{Custom: func(v string) string {
			called = true
			assert.Empty(t, v)
			return ""
		}}

		res := validator.Validate("", rule)
		assert.True(t, res.Valid)
		assert.True(t, called)
	})

	t.Run("runs last after built-in checks", func(t *testing.T) {
		rule := validator.Rule{
			MinLength: 8,
			Custom:    func(string) string { return "custom failure" },
		}

		res := validator.Validate("123", rule)
		assert.Equal(t, validator.MinLengthMessage(8), res.Error)
	})
}

func TestValidateEvaluationOrder(t *testing.T) {
	t.Parallel()

	// A value violating every rule at once reports the earliest check only.
	rule := validator.Rule{
		Email:     true,
		Phone:     true,
		MinLength: 100,
		MaxLength: 1,
		Pattern:   regexp.MustCompile(`^$`),
		Custom:    func(string) string { return "custom" },
	}

	res := validator.Validate("zz", rule)
	assert.Equal(t, validator.MsgEmail, res.Error)
}

func TestValidateZeroRule(t *testing.T) {
	t.Parallel()

	res := validator.Validate("anything goes", validator.Rule{})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Error)
}

func TestValidateNeverPanics(t *testing.T) {
	t.Parallel()

	values := []string{"", " ", "a", "a@b.com", "+123456", strings.Repeat("x", 300), "ሰላም ልዑል"}
	rules := []validator.Rule{
		{},
		{Required: true},
		{Email: true},
		{Phone: true},
		{MinLength: -5, MaxLength: -5},
		{MinLength: 3, MaxLength: 2},
		{Pattern: regexp.MustCompile(`a+`)},
		{Custom: func(string) string { return "" }},
		{Required: true, Email: true, Phone: true, MinLength: 1, MaxLength: 500},
	}

	for _, value := range values {
		for _, rule := range rules {
			res := validator.Validate(value, rule)
			// Valid and Error must always agree.
			assert.Equal(t, res.Valid, res.Error == "", "value=%q rule=%+v", value, rule)
		}
	}
}
