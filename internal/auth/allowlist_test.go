package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowlistTrimsAndLowercases(t *testing.T) {
	list := NewAllowlist([]string{" Admin@Example.COM ", "ops@example.com", ""})

	assert.True(t, list.Contains("admin@example.com"))
	assert.True(t, list.Contains("ADMIN@example.com"))
	assert.True(t, list.Contains("ops@example.com"))
	assert.False(t, list.Contains("intruder@example.com"))
}

func TestEmptyAllowlistAdmitsNobody(t *testing.T) {
	list := NewAllowlist(nil)
	assert.False(t, list.Contains("anyone@example.com"))
	assert.False(t, list.Contains(""))
}
