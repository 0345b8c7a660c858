package realtime

import (
	"math"
	"math/rand"
	"time"
)

// Backoff computes the delay before the next poll after consecutive
// failures. Attempt starts at 1 for the first failed cycle and resets to
// zero on the first success. Implementations must be safe for concurrent
// use.
type Backoff interface {
	NextInterval(attempt int) time.Duration
}

// FixedBackoff keeps polling at a constant interval regardless of failures.
// This mirrors the behavior callers get with no backoff configured at all;
// it exists so the strategy can be stated explicitly.
type FixedBackoff struct {
	Interval time.Duration
}

func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}

// LinearBackoff grows the delay by a fixed step per consecutive failure,
// capped at MaxInterval. A zero Step falls back to 5s, a zero MaxInterval to
// 2 minutes.
type LinearBackoff struct {
	Step        time.Duration
	MaxInterval time.Duration
}

func (l LinearBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	step := l.Step
	if step == 0 {
		step = 5 * time.Second
	}
	maxInterval := l.MaxInterval
	if maxInterval == 0 {
		maxInterval = 2 * time.Minute
	}

	interval := step * time.Duration(attempt)
	if interval > maxInterval {
		interval = maxInterval
	}
	return interval
}

// ExponentialBackoff slows the poll loop down while the backend is failing,
// with jitter so a fleet of clients does not retry in lockstep.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// NextInterval returns min(InitialInterval * Multiplier^(attempt-1), MaxInterval)
// scaled by a random factor in [1-JitterFactor, 1+JitterFactor].
func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialInterval
	if initial == 0 {
		initial = 5 * time.Second
	}
	maxInterval := e.MaxInterval
	if maxInterval == 0 {
		maxInterval = 2 * time.Minute
	}
	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	if e.JitterFactor > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}

	if interval > float64(maxInterval) {
		interval = float64(maxInterval)
	}

	return time.Duration(interval)
}
