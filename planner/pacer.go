package planner

import (
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive calls for the same
// key. It replaces an ad hoc fixed sleep between the tool phase and the
// follow-up completion with an explicit per-session pacing policy.
type Pacer struct {
	mu       sync.Mutex
	lastCall map[string]time.Time
	interval time.Duration
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		lastCall: make(map[string]time.Time),
		interval: interval,
	}
}

// Wait blocks until the interval since the key's previous call has elapsed,
// then stamps the key. The first call for a key returns immediately.
func (p *Pacer) Wait(key string) {
	p.mu.Lock()
	now := time.Now()
	wait := p.interval - now.Sub(p.lastCall[key])
	if wait > 0 {
		p.lastCall[key] = now.Add(wait)
	} else {
		wait = 0
		p.lastCall[key] = now
	}
	p.mu.Unlock()

	if wait > 0 {
		time.Sleep(wait)
	}
}
