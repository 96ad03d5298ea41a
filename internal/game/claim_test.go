package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewClaimToken()
		_, err := uuid.Parse(token)
		require.NoError(t, err)
		assert.False(t, seen[token], "claim tokens must be unique")
		seen[token] = true
	}
}
