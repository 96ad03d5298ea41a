package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gorm.io/gorm"
)

func TestRetryRead(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := retryRead(func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers from transient failures", func(t *testing.T) {
		calls := 0
		err := retryRead(func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		calls := 0
		boom := errors.New("connection reset")
		err := retryRead(func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, readAttempts, calls)
	})

	t.Run("record not found is not retried", func(t *testing.T) {
		calls := 0
		err := retryRead(func() error {
			calls++
			return gorm.ErrRecordNotFound
		})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Equal(t, 1, calls)
	})
}
