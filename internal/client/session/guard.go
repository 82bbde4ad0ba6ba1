// Package session implements the session guard: it owns the current-session
// state, exposes sign-in/sign-up/sign-out/check-session operations and
// reconciles out-of-band session change notifications.
//
// Every state change, whether it comes from an explicit call or from an
// out-of-band notification, is funneled through a single event queue consumed
// by one goroutine. Each change carries a sequence number issued when its
// operation began; the consumer drops any result a later-issued change has
// already superseded, so an in-flight sign-in that resolves after a sign-out
// notification cannot resurrect the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/logging"
)

// State is the guard's position in its lifecycle.
type State int

const (
	// StateUnknown holds from construction until the first check-session or
	// notification resolves. Protected content must not render in this state.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Result is the user-facing outcome of a sign-up or sign-in attempt.
type Result struct {
	Success bool
	Message string
}

type event struct {
	seq     uint64
	sess    *models.Session
	applied chan bool
}

// Guard serializes all session mutations through one event queue.
type Guard struct {
	client     remote.Client
	log        logging.Logger
	redirectTo string

	mu      sync.RWMutex
	state   State
	session *models.Session

	seq    atomic.Uint64
	events chan event
	done   chan struct{}
	once   sync.Once
}

// NewGuard constructs a Guard and starts its event loop. redirectTo is the
// URL confirmation and recovery mails point back to.
func NewGuard(client remote.Client, log logging.Logger, redirectTo string) *Guard {
	g := &Guard{
		client:     client,
		log:        log,
		redirectTo: redirectTo,
		state:      StateUnknown,
		events:     make(chan event, 16),
		done:       make(chan struct{}),
	}
	go g.run()
	return g
}

// Close stops the event loop. Pending events are dropped.
func (g *Guard) Close() {
	g.once.Do(func() { close(g.done) })
}

func (g *Guard) run() {
	var lastApplied uint64
	for {
		select {
		case ev := <-g.events:
			applied := ev.seq > lastApplied
			if applied {
				lastApplied = ev.seq
				g.apply(ev.sess)
			}
			if ev.applied != nil {
				ev.applied <- applied
			}
		case <-g.done:
			return
		}
	}
}

// apply overwrites local session state; the queue is the single
// source-of-truth reconciliation point.
func (g *Guard) apply(sess *models.Session) {
	g.mu.Lock()
	g.session = sess
	if sess != nil {
		g.state = StateAuthenticated
	} else {
		g.state = StateAnonymous
	}
	g.mu.Unlock()

	if sess != nil {
		g.client.SetToken(sess.AccessToken)
	} else {
		g.client.SetToken("")
	}
}

// issueSeq reserves the next sequence number. Operations that resolve state
// remotely take theirs before the remote call, so a change issued while they
// are in flight outranks their result.
func (g *Guard) issueSeq() uint64 {
	return g.seq.Add(1)
}

// enqueue submits a state change and waits until the event loop handles it,
// so the caller observes its own write. It reports whether the change was
// applied or dropped as superseded.
func (g *Guard) enqueue(seq uint64, sess *models.Session) bool {
	ev := event{seq: seq, sess: sess, applied: make(chan bool, 1)}
	select {
	case g.events <- ev:
	case <-g.done:
		return false
	}
	select {
	case applied := <-ev.applied:
		return applied
	case <-g.done:
		return false
	}
}

// State returns the current lifecycle state.
func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Loading reports whether the first session verification is still pending.
func (g *Guard) Loading() bool {
	return g.State() == StateUnknown
}

// Account returns the signed-in account, or nil.
func (g *Guard) Account() *models.Account {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.session == nil {
		return nil
	}
	acc := g.session.Account
	return &acc
}

// Session returns the current session, or nil.
func (g *Guard) Session() *models.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// SignUp requests account creation. When the service requires confirmation a
// user-facing message is returned and no session is established; otherwise
// the returned session is installed.
func (g *Guard) SignUp(ctx context.Context, email, password, displayName string) Result {
	seq := g.issueSeq()
	res, err := g.client.SignUp(ctx, email, password, displayName, g.redirectTo)
	if err != nil {
		g.log.Warn(ctx, "sign-up failed", "email", email, "error", err)
		return Result{Success: false, Message: err.Error()}
	}

	if res.ConfirmationRequired || res.Session == nil {
		return Result{Success: true, Message: "registration successful, please check your inbox for the confirmation link"}
	}

	if !g.enqueue(seq, res.Session) {
		return Result{Success: false, Message: "the session changed while signing up, please sign in"}
	}
	return Result{Success: true, Message: "registration successful"}
}

// SignIn validates credentials and installs the returned session. With
// remember=false the service is asked for a memory-only session. Failure
// messages from the service are surfaced verbatim.
func (g *Guard) SignIn(ctx context.Context, email, password string, remember bool) Result {
	seq := g.issueSeq()
	sess, err := g.client.SignIn(ctx, email, password, remember)
	if err != nil {
		g.log.Warn(ctx, "sign-in failed", "email", email, "error", err)
		return Result{Success: false, Message: err.Error()}
	}

	if !g.enqueue(seq, sess) {
		g.log.Warn(ctx, "sign-in result superseded by a newer session change", "email", email)
		return Result{Success: false, Message: "the session changed while signing in, please try again"}
	}
	return Result{Success: true, Message: "signed in"}
}

// SignOut invalidates the session remotely and clears local state
// unconditionally: the local clear runs in a defer, so a failing remote call
// still leaves the guard anonymous.
func (g *Guard) SignOut(ctx context.Context) error {
	// The clear takes its sequence number when it is enqueued, so it outranks
	// every change issued before it.
	defer func() { g.enqueue(g.issueSeq(), nil) }()

	if err := g.client.SignOut(ctx); err != nil {
		g.log.Warn(ctx, "remote sign-out failed, clearing local session anyway", "error", err)
		return fmt.Errorf("sign-out error: %w", err)
	}
	return nil
}

// CheckSession re-queries the service for an active session and synchronizes
// local state. Intended for page-load: the guard stays in StateUnknown until
// the first call (or notification) resolves.
func (g *Guard) CheckSession(ctx context.Context) bool {
	seq := g.issueSeq()
	sess, err := g.client.Session(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotAuthenticated) {
			g.log.Warn(ctx, "session check failed", "error", err)
		}
		g.enqueue(seq, nil)
		return false
	}

	g.enqueue(seq, sess)
	return true
}

// Notify delivers an out-of-band session change (token refresh, sign-out in
// another client). The new state overwrites the local one; pass nil for a
// reported sign-out.
func (g *Guard) Notify(sess *models.Session) {
	g.enqueue(g.issueSeq(), sess)
}

// ResetPassword requests a recovery mail. The service answers uniformly
// whether or not the account exists.
func (g *Guard) ResetPassword(ctx context.Context, email string) error {
	if err := g.client.ResetPassword(ctx, email, g.redirectTo); err != nil {
		return fmt.Errorf("password reset error: %w", err)
	}
	return nil
}

// UpdateProfile changes display name and/or email of the signed-in account
// and folds the result into the current session.
func (g *Guard) UpdateProfile(ctx context.Context, patch remote.AccountPatch) error {
	cur := g.Session()
	if cur == nil {
		return common.ErrNotAuthenticated
	}

	seq := g.issueSeq()
	acc, err := g.client.UpdateAccount(ctx, patch)
	if err != nil {
		return fmt.Errorf("profile update error: %w", err)
	}

	updated := *cur
	updated.Account = *acc
	// If a newer session change superseded this one the remote update still
	// happened; the next refresh probe picks up the new account data.
	g.enqueue(seq, &updated)
	return nil
}

// StartRefreshWatcher periodically reconciles local state with the service:
// an expired token or a rejected probe demotes the guard to anonymous, a
// successful probe refreshes the cached account. Blocks until ctx is done.
func (g *Guard) StartRefreshWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cur := g.Session()
			if cur == nil {
				continue
			}
			if exp, err := tokenExpiry(cur.AccessToken); err == nil && time.Now().After(exp) {
				g.log.Info(ctx, "session token expired, signing out locally")
				g.Notify(nil)
				continue
			}

			seq := g.issueSeq()
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			sess, err := g.client.Session(probeCtx)
			cancel()

			if err != nil {
				if errors.Is(err, common.ErrNotAuthenticated) {
					g.enqueue(seq, nil)
				}
				// network failures keep the current state
				continue
			}
			g.enqueue(seq, sess)

		case <-ctx.Done():
			return
		}
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the guard
// only uses it to avoid needless round-trips, never for authorization.
func tokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}
