package notifier

import "sync"

// pairKey identifies one reminder delivery: one session to one user.
type pairKey struct {
	SessionID string
	UserID    string
}

// DispatchTracker records which (session, user) reminder pairs were
// confirmed sent. A present key means the mail went out and must never be
// resent; an absent key means a send may be attempted on a later tick.
// State lives only for the process lifetime; the durable session-level
// "notified" flag covers restarts.
type DispatchTracker struct {
	mu   sync.Mutex
	sent map[pairKey]struct{}
}

func NewDispatchTracker() *DispatchTracker {
	return &DispatchTracker{sent: make(map[pairKey]struct{})}
}

// Sent reports whether the pair was already successfully notified.
func (t *DispatchTracker) Sent(sessionID, userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sent[pairKey{sessionID, userID}]
	return ok
}

// MarkSent records a confirmed delivery. Call only after the mailer
// reported success.
func (t *DispatchTracker) MarkSent(sessionID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent[pairKey{sessionID, userID}] = struct{}{}
}

// Clear removes the pair, leaving it eligible for retry.
func (t *DispatchTracker) Clear(sessionID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sent, pairKey{sessionID, userID})
}

// Size returns the number of tracked deliveries.
func (t *DispatchTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sent)
}
