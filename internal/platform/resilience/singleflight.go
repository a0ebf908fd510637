package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution. Followers block until the leader finishes and share its result.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*inflightCall
}

type inflightCall struct {
	done sync.WaitGroup
	val  any
	err  error
}

// Do runs fn once per key at a time. The bool result reports whether the
// value came from another caller's execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*inflightCall)
	}
	if leader, ok := g.calls[key]; ok {
		g.mu.Unlock()
		leader.done.Wait()
		return leader.val, leader.err, true
	}

	c := &inflightCall{}
	c.done.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()
	c.done.Done()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return c.val, c.err, false
}
