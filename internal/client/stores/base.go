// Package stores implements the entity stores of the dashboard: an in-memory
// cache plus a CRUD facade over one remote collection, scoped to the
// signed-in account (contacts excepted). All stores share the same contract:
// a mutation needs a session, failures are recorded and notified but never
// fatal, and after a failed mutation the observable cache equals the last
// known-good server state.
package stores

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// SessionSource provides the current account. Implemented by the session
// guard; test doubles inject arbitrary accounts.
type SessionSource interface {
	Account() *models.Account
}

// base carries the state every store shares: loading/error slots, the
// notifier, the session source, and the per-entity request sequencing used to
// discard stale mutation outcomes.
type base struct {
	mu       sync.Mutex
	loading  bool
	errMsg   string
	notifier Notifier
	sessions SessionSource

	seqCounter uint64
	latestReq  map[string]uint64
	pending    map[string]*entityPending
}

// entityPending tracks the in-flight mutations of one entity. rollback
// restores the last known-good state for that entity; it is nil while the
// cache holds only confirmed state.
type entityPending struct {
	count    int
	rollback func()
}

func newBase(sessions SessionSource, notifier Notifier) base {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return base{
		sessions:  sessions,
		notifier:  notifier,
		latestReq: make(map[string]uint64),
		pending:   make(map[string]*entityPending),
	}
}

// Loading reports whether an operation is in flight.
func (b *base) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Error returns the message of the last failed operation, or "".
func (b *base) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// begin marks the store loading and clears the error slot.
func (b *base) begin() {
	b.mu.Lock()
	b.loading = true
	b.errMsg = ""
	b.mu.Unlock()
}

// finish resets the loading flag regardless of outcome, records the error
// string and emits the transient notification. Runs from a defer in every
// operation so the store never stays in a partially-loading state.
func (b *base) finish(err error, successMsg, failMsg string) {
	b.mu.Lock()
	b.loading = false
	if err != nil {
		b.errMsg = err.Error()
	}
	b.mu.Unlock()

	if err != nil {
		b.notifier.Error(fmt.Sprintf("%s: %s", failMsg, err))
		return
	}
	if successMsg != "" {
		b.notifier.Success(successMsg)
	}
}

// requireAccount fails before any remote call is attempted when no session
// exists.
func (b *base) requireAccount() (*models.Account, error) {
	acc := b.sessions.Account()
	if acc == nil {
		return nil, common.ErrNotAuthenticated
	}
	return acc, nil
}

// issue registers a new request for entityID and returns its sequence number.
// Caller must hold b.mu.
func (b *base) issueLocked(entityID string) uint64 {
	b.seqCounter++
	b.latestReq[entityID] = b.seqCounter
	return b.seqCounter
}

// isLatestLocked reports whether seq is still the most recently issued
// request for entityID. Caller must hold b.mu.
func (b *base) isLatestLocked(entityID string, seq uint64) bool {
	return b.latestReq[entityID] == seq
}
