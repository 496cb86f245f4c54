package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"priya@example.com",
		"a.b+c@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"plain",
		"@example.com",
		"priya@",
		"priya@nodot",
		"priya@example.",
		"has space@example.com",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "priya@example.com", NormalizeEmail("  Priya@Example.COM "))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
