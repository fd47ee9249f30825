package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"student@campus.edu",
		"first.last@uni.ac.in",
		"User+tag@Example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"missing@domain",
		"@campus.edu",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://github.com/org/repo"))
	assert.True(t, IsValidURL("http://drive.google.com/file"))
	assert.False(t, IsValidURL("ftp://files.example.com"))
	assert.False(t, IsValidURL("not a url"))
	assert.False(t, IsValidURL(""))
	assert.False(t, IsValidURL("https://"))
}

func TestRequiredTrimmed(t *testing.T) {
	assert.True(t, RequiredTrimmed("value"))
	assert.False(t, RequiredTrimmed(""))
	assert.False(t, RequiredTrimmed("   "))
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("hello").WithMinLength(2).WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("h").WithMinLength(2).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("toolongvalue").WithMaxLength(5).Validate())
}
