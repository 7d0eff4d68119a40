package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector; stored credentials depend on this exact scheme.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"),
	)

	assert.Equal(t, HashPassword("secret123"), HashPassword("secret123"))
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
	assert.Len(t, HashPassword(""), 64)
}
