package service

import (
	"math/rand/v2"
	"time"
)

// maxBackoffJitter bounds the random share added on top of the base delay.
const maxBackoffJitter = 0.3

// AdvisoryBackoff returns base * 2^(attempt-1) plus up to 30% jitter.
// The queue owns the real schedule; this only feeds nextAttemptAt.
func AdvisoryBackoff(attempt int, base time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
	}
	jitter := time.Duration(rand.Float64() * maxBackoffJitter * float64(d))
	return d + jitter
}
