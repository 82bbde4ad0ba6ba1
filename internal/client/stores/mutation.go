package stores

import "context"

// mutation bundles the three pieces every store mutation shares: the
// optimistic local apply, the remote call, and the snapshot restore. Factored
// here once so all stores get identical rollback semantics.
type mutation struct {
	// EntityID keys the request sequencing. Creates use a fresh temporary id.
	EntityID string

	// Apply performs the optimistic local update. Called under the store
	// lock before the remote call. Nil for non-optimistic mutations.
	Apply func()

	// Call performs the remote mutation and returns a commit closure that
	// folds the confirmed server state into the cache. The commit (if any)
	// runs under the store lock.
	Call func(ctx context.Context) (commit func(), err error)

	// Rollback restores the snapshot taken before Apply. Runs under the
	// store lock; when requests on one entity overlap, the snapshot of the
	// first request issued against confirmed state is the one restored.
	Rollback func()
}

// mutate executes m with rollback-on-failure and stale-response protection:
// the outcome of a request is applied only while it is still the most
// recently issued request for its entity, so a late-resolving call can never
// overwrite the state written by a newer one.
//
// Overlapping requests on one entity chain their snapshots: a later request
// snapshots cache state that already contains the earlier optimistic applies,
// so a failure of the latest request rolls back to the oldest snapshot of the
// chain, the last state confirmed by the server.
func (b *base) mutate(ctx context.Context, m mutation) error {
	b.mu.Lock()
	seq := b.issueLocked(m.EntityID)
	p := b.pending[m.EntityID]
	if p == nil {
		p = &entityPending{}
		b.pending[m.EntityID] = p
	}
	if p.rollback == nil {
		p.rollback = m.Rollback
	}
	p.count++
	if m.Apply != nil {
		m.Apply()
	}
	b.mu.Unlock()

	commit, err := m.Call(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	p.count--
	if !b.isLatestLocked(m.EntityID, seq) {
		// A newer request owns this entity; its outcome settles the state.
		if p.count == 0 {
			delete(b.pending, m.EntityID)
		}
		return err
	}

	if err != nil {
		if p.rollback != nil {
			p.rollback()
		}
	} else if commit != nil {
		commit()
	}

	// The latest outcome reconciled the cache with the server, so the next
	// request starts a fresh snapshot chain.
	p.rollback = nil
	if p.count == 0 {
		delete(b.pending, m.EntityID)
	}
	return err
}
