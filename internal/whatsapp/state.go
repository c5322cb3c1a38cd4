package whatsapp

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// State is a node of the lifecycle state machine.
type State int

const (
	StateDisconnected State = iota
	StateInitializing
	StateAwaitingPairing
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAwaitingPairing:
		return "awaiting_pairing"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// PairingInfo describes the pairing code a user has to scan.
type PairingInfo struct {
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Tracker holds the connection state of the single WhatsApp session.
//
// Only Manager mutates it; every other component reads through the exported methods.
type Tracker struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	ttl   time.Duration

	state            State
	pendingCode      string
	pendingIssuedAt  time.Time
	manualDisconnect bool
}

// NewTracker creates a Tracker in the disconnected state. pairingTTL bounds
// how long an issued pairing code stays servable.
func NewTracker(clock clockwork.Clock, pairingTTL time.Duration) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{clock: clock, ttl: pairingTTL}
}

// IsReady reports whether the session is authenticated and connected.
func (t *Tracker) IsReady() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state == StateConnected
}

// IsBusy reports whether a connection attempt is in flight.
func (t *Tracker) IsBusy() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state == StateInitializing
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// PairingInfo returns the pending pairing code. Expired codes are cleared
// and reported as absent.
func (t *Tracker) PairingInfo() (PairingInfo, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expireLocked()
	if t.pendingCode == "" {
		return PairingInfo{}, false
	}

	return PairingInfo{Code: t.pendingCode, IssuedAt: t.pendingIssuedAt, ExpiresAt: t.pendingIssuedAt.Add(t.ttl)}, true
}

// Snapshot renders the current state as a Status carrying message.
func (t *Tracker) Snapshot(message string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expireLocked()
	return Status{
		State:         t.state.String(),
		Initializing:  t.state == StateInitializing,
		Connected:     t.state == StateConnected,
		PairingNeeded: t.pendingCode != "",
		Message:       message,
		Timestamp:     t.clock.Now(),
	}
}

// expireLocked drops a pairing code older than the TTL. t.mu must be held
// for writing.
func (t *Tracker) expireLocked() {
	if t.pendingCode == "" || !t.clock.Now().After(t.pendingIssuedAt.Add(t.ttl)) {
		return
	}

	t.pendingCode = ""
	t.pendingIssuedAt = time.Time{}
	if t.state == StateAwaitingPairing {
		t.state = StateDisconnected
	}
}

func (t *Tracker) beginInit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateInitializing
}

func (t *Tracker) setPairingCode(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateAwaitingPairing
	t.pendingCode = code
	t.pendingIssuedAt = t.clock.Now()
}

func (t *Tracker) setConnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateConnected
	t.pendingCode = ""
	t.pendingIssuedAt = time.Time{}
}

func (t *Tracker) clearPairing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingCode = ""
	t.pendingIssuedAt = time.Time{}
	if t.state == StateAwaitingPairing {
		t.state = StateDisconnected
	}
}

// reset moves to disconnected and drops any pairing code.
func (t *Tracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateDisconnected
	t.pendingCode = ""
	t.pendingIssuedAt = time.Time{}
}

// stopInitializing leaves the initializing state without touching a pairing code.
func (t *Tracker) stopInitializing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateInitializing {
		return false
	}
	t.state = StateDisconnected
	return true
}

func (t *Tracker) setManualDisconnect(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.manualDisconnect = v
}

// consumeManualDisconnect reports and clears the manual logout flag.
func (t *Tracker) consumeManualDisconnect() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.manualDisconnect
	t.manualDisconnect = false
	return v
}
