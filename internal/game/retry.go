package game

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	readAttempts = 3
	readBackoff  = 50 * time.Millisecond
)

// retryRead runs a read-only lookup up to readAttempts times with exponential
// backoff. Only lookups go through here; write transitions fail closed and
// surface to the caller, since retrying a write could apply it twice.
func retryRead(fn func() error) error {
	backoff := readBackoff
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		err = fn()
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return err
}
