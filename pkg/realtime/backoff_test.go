package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arbadelivery/deliverykit/pkg/realtime"
)

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	b := realtime.FixedBackoff{Interval: 7 * time.Second}
	assert.Equal(t, 7*time.Second, b.NextInterval(1))
	assert.Equal(t, 7*time.Second, b.NextInterval(100))
	assert.Zero(t, b.NextInterval(0))
	assert.Zero(t, b.NextInterval(-1))
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()

	b := realtime.LinearBackoff{Step: 2 * time.Second, MaxInterval: 7 * time.Second}
	assert.Equal(t, 2*time.Second, b.NextInterval(1))
	assert.Equal(t, 4*time.Second, b.NextInterval(2))
	assert.Equal(t, 6*time.Second, b.NextInterval(3))
	assert.Equal(t, 7*time.Second, b.NextInterval(4))
	assert.Zero(t, b.NextInterval(0))

	// Zero value applies defaults.
	assert.Equal(t, 5*time.Second, realtime.LinearBackoff{}.NextInterval(1))
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	t.Run("doubles without jitter", func(t *testing.T) {
		b := realtime.ExponentialBackoff{
			InitialInterval: time.Second,
			MaxInterval:     time.Minute,
			Multiplier:      2,
		}
		assert.Equal(t, time.Second, b.NextInterval(1))
		assert.Equal(t, 2*time.Second, b.NextInterval(2))
		assert.Equal(t, 4*time.Second, b.NextInterval(3))
	})

	t.Run("caps at max interval", func(t *testing.T) {
		b := realtime.ExponentialBackoff{
			InitialInterval: time.Second,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
		}
		assert.Equal(t, 5*time.Second, b.NextInterval(10))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		b := realtime.ExponentialBackoff{
			InitialInterval: time.Second,
			MaxInterval:     time.Minute,
			Multiplier:      2,
			JitterFactor:    0.2,
		}
		for i := 0; i < 50; i++ {
			d := b.NextInterval(2)
			assert.GreaterOrEqual(t, d, 1600*time.Millisecond)
			assert.LessOrEqual(t, d, 2400*time.Millisecond)
		}
	})

	t.Run("zero attempt yields zero", func(t *testing.T) {
		b := realtime.ExponentialBackoff{}
		assert.Zero(t, b.NextInterval(0))
	})

	t.Run("zero value applies defaults", func(t *testing.T) {
		b := realtime.ExponentialBackoff{}
		assert.Equal(t, 5*time.Second, b.NextInterval(1))
		assert.Equal(t, 10*time.Second, b.NextInterval(2))
	})
}
