package whatsapp

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Options configures the lifecycle timers of a Manager.
type Options struct {
	InitTimeout    time.Duration  // deadline for a pairing code or connection to appear
	ReconnectDelay time.Duration  // pause before reconnecting after an unsolicited disconnect
	Retry          retry.Strategy // start attempts; delay of attempt n is Delay * Backoff^n
}

// DefaultOptions returns the production lifecycle settings.
func DefaultOptions() Options {
	return Options{
		InitTimeout:    120 * time.Second,
		ReconnectDelay: 5 * time.Second,
		Retry:          retry.Strategy{Attempts: 3, Delay: 5 * time.Second, Backoff: 2},
	}
}

// Manager owns the single WhatsApp session and keeps the Tracker in sync
// with what the session reports.
type Manager struct {
	// opMu serialises Start, Logout, RequestPairingRefresh and timer driven restarts.
	opMu sync.Mutex
	// mu guards the session handle, its generation and the timers. Session
	// callbacks only take mu, so they may fire from inside a locked operation.
	mu sync.Mutex

	tracker     *Tracker
	factory     SessionFactory
	storage     Storage
	broadcaster Broadcaster
	clock       clockwork.Clock
	opts        Options

	ctx    context.Context
	cancel context.CancelFunc

	session        Session
	generation     uint64
	initTimer      clockwork.Timer
	retryTimer     clockwork.Timer
	reconnectTimer clockwork.Timer
}

// NewManager creates a Manager in the disconnected state.
func NewManager(
	tracker *Tracker,
	factory SessionFactory,
	storage Storage,
	broadcaster Broadcaster,
	clock clockwork.Clock,
	opts Options,
) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if broadcaster == nil {
		broadcaster = BroadcasterFunc(func(Status) {})
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		tracker:     tracker,
		factory:     factory,
		storage:     storage,
		broadcaster: broadcaster,
		clock:       clock,
		opts:        opts,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins a connection attempt. It is a no-op returning ErrInitializing
// or ErrAlreadyConnected when an attempt is in flight or the session is ready.
func (m *Manager) Start(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	return m.start(ctx, 0)
}

// start requires opMu.
func (m *Manager) start(ctx context.Context, attempt int) error {
	switch m.tracker.State() {
	case StateConnected:
		return ErrAlreadyConnected
	case StateInitializing:
		return ErrInitializing
	}

	m.tracker.beginInit()
	m.tracker.setManualDisconnect(false)

	m.mu.Lock()
	old := m.detachLocked()
	gen := m.generation
	m.stopTimerLocked(&m.initTimer)
	m.initTimer = m.clock.AfterFunc(m.opts.InitTimeout, func() { m.onInitTimeout(gen) })
	m.mu.Unlock()

	destroy(old)

	zlog.Logger.Info().Int("attempt", attempt).Msg("starting whatsapp client")
	m.broadcast("initializing whatsapp client")

	sess, err := m.factory.NewSession(ctx, func(e Event) { m.handleEvent(gen, e) })
	if err != nil {
		m.startFailed(gen, attempt, fmt.Errorf("build session: %w", err))
		return fmt.Errorf("%w: %v", ErrInitFailure, err)
	}

	m.mu.Lock()
	m.session = sess
	m.mu.Unlock()

	if err := sess.Initialize(m.ctx); err != nil {
		m.startFailed(gen, attempt, fmt.Errorf("initialize session: %w", err))
		return fmt.Errorf("%w: %v", ErrInitFailure, err)
	}

	return nil
}

// startFailed tears down the failed session and either schedules the next
// attempt or gives up, wiping the stored session on the last one.
func (m *Manager) startFailed(gen uint64, attempt int, cause error) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return
	}
	m.stopTimerLocked(&m.initTimer)
	old := m.detachLocked()
	m.mu.Unlock()

	destroy(old)
	m.tracker.reset()

	next := attempt + 1
	if next < m.opts.Retry.Attempts {
		delay := m.backoff(attempt)

		m.mu.Lock()
		m.stopTimerLocked(&m.retryTimer)
		scheduled := m.generation
		m.retryTimer = m.clock.AfterFunc(delay, func() { m.restart(scheduled, next) })
		m.mu.Unlock()

		zlog.Logger.Warn().Err(cause).Int("attempt", attempt).Dur("retry_in", delay).Msg("whatsapp initialization failed")
		m.broadcast(fmt.Sprintf("initialization failed, retrying in %s", delay))
		return
	}

	zlog.Logger.Error().Err(cause).Int("attempt", attempt).Msg("whatsapp initialization failed, giving up")

	if err := m.storage.Wipe(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to wipe whatsapp session storage")
	}

	m.broadcast(fmt.Sprintf("%s after %d attempts, reconnect manually", ErrInitFailure, next))
}

func (m *Manager) backoff(attempt int) time.Duration {
	factor := m.opts.Retry.Backoff
	if factor < 1 {
		factor = 1
	}
	return time.Duration(float64(m.opts.Retry.Delay) * math.Pow(factor, float64(attempt)))
}

// restart runs a timer driven start attempt. It is skipped when the
// session changed hands since the timer was armed.
func (m *Manager) restart(gen uint64, attempt int) {
	if m.ctx.Err() != nil {
		return
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	stale := gen != m.generation
	m.mu.Unlock()
	if stale {
		return
	}

	if err := m.start(m.ctx, attempt); err != nil {
		zlog.Logger.Debug().Err(err).Int("attempt", attempt).Msg("whatsapp restart did not complete")
	}
}

func (m *Manager) onInitTimeout(gen uint64) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return
	}
	m.initTimer = nil
	m.mu.Unlock()

	// The session is left running; only the tracked intent is dropped.
	if m.tracker.stopInitializing() {
		zlog.Logger.Warn().Dur("timeout", m.opts.InitTimeout).Msg("whatsapp initialization timed out")
		m.broadcast(ErrInitTimeout.Error())
	}
}

func (m *Manager) handleEvent(gen uint64, e Event) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		zlog.Logger.Debug().Str("event", e.Kind.String()).Msg("dropping event from stale whatsapp session")
		return
	}

	var message string

	switch e.Kind {
	case EventPairingCode:
		m.tracker.setPairingCode(e.Code)
		message = "scan the QR code to link WhatsApp"

	case EventConnected:
		m.stopTimerLocked(&m.initTimer)
		m.tracker.setConnected()
		m.tracker.setManualDisconnect(false)
		message = "whatsapp client is ready"

	case EventAuthenticated:
		m.stopTimerLocked(&m.initTimer)
		m.tracker.setConnected()
		message = "whatsapp client authenticated"

	case EventAuthFailed:
		m.stopTimerLocked(&m.initTimer)
		m.tracker.reset()
		message = fmt.Sprintf("%s: %s", ErrAuthFailure, e.Reason)

	case EventDisconnected:
		m.stopTimerLocked(&m.initTimer)
		m.tracker.reset()

		if m.tracker.consumeManualDisconnect() {
			message = "whatsapp client logged out"
			break
		}

		m.stopTimerLocked(&m.reconnectTimer)
		m.reconnectTimer = m.clock.AfterFunc(m.opts.ReconnectDelay, func() { m.restart(gen, 0) })
		message = fmt.Sprintf("whatsapp disconnected (%s), reconnecting in %s", e.Reason, m.opts.ReconnectDelay)

	default:
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	zlog.Logger.Info().Str("event", e.Kind.String()).Str("reason", e.Reason).Msg(message)
	m.broadcast(message)
}

// Logout logs the session out and removes the stored profile. Teardown
// happens even when the graceful logout fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	// Set before touching the session so the resulting disconnect does not reconnect.
	m.tracker.setManualDisconnect(true)

	m.mu.Lock()
	sess := m.session
	m.stopTimerLocked(&m.initTimer)
	m.stopTimerLocked(&m.retryTimer)
	m.stopTimerLocked(&m.reconnectTimer)
	m.mu.Unlock()

	if sess != nil {
		if err := sess.Logout(ctx); err != nil {
			zlog.Logger.Warn().Err(err).Msg("graceful whatsapp logout failed, tearing down")
		}
	}

	m.mu.Lock()
	old := m.detachLocked()
	m.mu.Unlock()

	destroy(old)
	m.tracker.reset()

	if err := m.storage.Wipe(); err != nil {
		return fmt.Errorf("wipe session storage: %w", err)
	}

	m.broadcast("whatsapp client logged out")

	return nil
}

// RequestPairingRefresh drops the current pairing code and stored profile
// and starts over.
func (m *Manager) RequestPairingRefresh(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	switch m.tracker.State() {
	case StateConnected:
		return ErrAlreadyConnected
	case StateInitializing:
		return ErrInitializing
	}

	m.tracker.clearPairing()

	m.mu.Lock()
	m.stopTimerLocked(&m.retryTimer)
	m.stopTimerLocked(&m.reconnectTimer)
	old := m.detachLocked()
	m.mu.Unlock()

	destroy(old)

	if err := m.storage.Wipe(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to wipe whatsapp session storage")
	}

	return m.start(ctx, 0)
}

// Session returns the live session, or nil.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Close stops all timers and disconnects without logging out.
func (m *Manager) Close() {
	m.cancel()

	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	m.stopTimerLocked(&m.initTimer)
	m.stopTimerLocked(&m.retryTimer)
	m.stopTimerLocked(&m.reconnectTimer)
	old := m.detachLocked()
	m.mu.Unlock()

	destroy(old)
	m.tracker.reset()
}

// detachLocked invalidates the current session generation and returns the
// session for destruction outside the lock.
func (m *Manager) detachLocked() Session {
	old := m.session
	m.session = nil
	m.generation++
	return old
}

func (m *Manager) stopTimerLocked(t *clockwork.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

func (m *Manager) broadcast(message string) {
	m.broadcaster.Broadcast(m.tracker.Snapshot(message))
}

func destroy(s Session) {
	if s != nil {
		s.Destroy()
	}
}
