package likes

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleGuard(t *testing.T) {
	t.Run("acquire, reject while held, reacquire after release", func(t *testing.T) {
		g := newToggleGuard()
		key := toggleKey("user-5", "post-9")

		assert.True(t, g.tryAcquire(key))
		assert.False(t, g.tryAcquire(key), "held key must be rejected, not queued")

		g.release(key)
		assert.True(t, g.tryAcquire(key))
	})

	t.Run("distinct pairs do not contend", func(t *testing.T) {
		g := newToggleGuard()

		assert.True(t, g.tryAcquire(toggleKey("user-1", "post-1")))
		assert.True(t, g.tryAcquire(toggleKey("user-1", "post-2")))
		assert.True(t, g.tryAcquire(toggleKey("user-2", "post-1")))
	})

	t.Run("ids cannot collide across the separator", func(t *testing.T) {
		g := newToggleGuard()

		assert.True(t, g.tryAcquire(toggleKey("user-1", "2post")))
		assert.True(t, g.tryAcquire(toggleKey("user-12", "post")))
	})

	t.Run("exactly one concurrent acquirer wins", func(t *testing.T) {
		g := newToggleGuard()
		key := toggleKey("user-5", "post-9")

		const attempts = 64
		var wins int32
		var wg sync.WaitGroup

		wg.Add(attempts)
		for i := 0; i < attempts; i++ {
			go func() {
				defer wg.Done()
				if g.tryAcquire(key) {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&wins))
	})
}
