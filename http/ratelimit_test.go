package http_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bqhttp "github.com/fwojciec/bookqa/http"
	"github.com/stretchr/testify/assert"
)

func TestClientLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows burst then refuses", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(0.001, 2)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("different clients have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(0.001, 1)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("treats non-positive burst as one", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(0.001, 0)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(0.001, 5)

		var allowed atomic.Int32
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("10.0.0.1") {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), allowed.Load())
	})

	t.Run("drops idle clients", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(10, 1)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		assert.True(t, limiter.AllowAt("10.0.0.1", start))
		assert.True(t, limiter.AllowAt("10.0.0.2", start))
		assert.Equal(t, 2, limiter.Len())

		assert.True(t, limiter.AllowAt("10.0.0.3", start.Add(2*time.Minute)))
		assert.Equal(t, 1, limiter.Len())
	})

	t.Run("keeps throttled clients", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(0.001, 1)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		later := start.Add(2 * time.Minute)

		assert.True(t, limiter.AllowAt("10.0.0.1", start))
		assert.True(t, limiter.AllowAt("10.0.0.2", later))
		assert.Equal(t, 2, limiter.Len())
		assert.False(t, limiter.AllowAt("10.0.0.1", later))
	})

	t.Run("does not sweep before the interval", func(t *testing.T) {
		t.Parallel()

		limiter := bqhttp.NewClientLimiter(10, 1)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		assert.True(t, limiter.AllowAt("10.0.0.1", start))
		assert.True(t, limiter.AllowAt("10.0.0.2", start.Add(10*time.Second)))
		assert.Equal(t, 2, limiter.Len())
	})
}
