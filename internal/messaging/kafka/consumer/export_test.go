package consumer

import "time"

// SetRetryBackoff shortens the retry wait and returns a func restoring it.
func SetRetryBackoff(d time.Duration) func() {
	prev := retryBackoff
	retryBackoff.initial, retryBackoff.max = d, d
	return func() { retryBackoff = prev }
}
