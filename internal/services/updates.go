package services

import "sync"

// UpdateBus is the channel workflows use to announce "user-relevant data
// changed, re-read it". Publishes are fire-and-forget with no payload beyond
// the affected uid: a subscriber that is still draining simply coalesces
// near-simultaneous publishes into its next read.
type UpdateBus struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewUpdateBus() *UpdateBus {
	return &UpdateBus{subs: make(map[chan string]struct{})}
}

// Subscribe registers a listener. The caller owns the returned channel and
// must release it with Unsubscribe.
func (b *UpdateBus) Subscribe() chan string {
	ch := make(chan string, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *UpdateBus) Unsubscribe(ch chan string) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish notifies every subscriber that uid's balance or session-visible
// state changed. Slow subscribers drop the signal rather than block the
// publishing workflow.
func (b *UpdateBus) Publish(uid string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- uid:
		default:
		}
	}
}
