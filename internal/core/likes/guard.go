package likes

import "sync"

// toggleGuard is the single-flight guard for like/unlike operations. It holds
// the set of (actor, post) pairs with a toggle currently in flight; a second
// toggle for a held pair is rejected immediately rather than queued, so rapid
// double-clicks cannot race each other into the store.
//
// The set lives for the process lifetime of the coordinator and is never
// persisted: the locks are inherently transient.
type toggleGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newToggleGuard() *toggleGuard {
	return &toggleGuard{
		inFlight: make(map[string]struct{}),
	}
}

// tryAcquire claims the key if no toggle holds it, reporting whether the
// claim succeeded. It never blocks.
func (g *toggleGuard) tryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.inFlight[key]; held {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// release frees the key. Callers must release exactly once per successful
// tryAcquire, on every path including errors.
func (g *toggleGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)
}

// toggleKey builds the guard key for an (actor, post) pair. The NUL separator
// keeps distinct pairs from colliding whatever the ids contain.
func toggleKey(userID, postID string) string {
	return userID + "\x00" + postID
}
