package whatsapp

import (
	"context"
	"time"
)

// EventKind enumerates the lifecycle callbacks of a session.
type EventKind int

const (
	EventPairingCode EventKind = iota + 1
	EventConnected
	EventAuthenticated
	EventAuthFailed
	EventDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventPairingCode:
		return "pairing_code"
	case EventConnected:
		return "connected"
	case EventAuthenticated:
		return "authenticated"
	case EventAuthFailed:
		return "auth_failed"
	case EventDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is emitted by a Session. Code is set for EventPairingCode,
// Reason for EventAuthFailed and EventDisconnected.
type Event struct {
	Kind   EventKind
	Code   string
	Reason string
}

// EventHandler receives session events in emission order.
type EventHandler func(Event)

// Media is an attachment fetched for a media message.
type Media struct {
	Data     []byte
	MimeType string
	FileName string
}

// Contact is an address-book entry of the connected account.
type Contact struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// Session is the underlying messaging connection.
//
// Initialize must return once the connection attempt is under way; progress
// is reported through the EventHandler the session was built with.
type Session interface {
	Initialize(ctx context.Context) error
	IsConnected() bool
	SendText(ctx context.Context, phone, body string) (string, error)
	SendMedia(ctx context.Context, phone string, media Media, caption string) (string, error)
	Contacts(ctx context.Context) ([]Contact, error)
	Logout(ctx context.Context) error
	// Destroy removes every listener and closes the connection.
	Destroy()
}

// SessionFactory builds sessions bound to a handler.
type SessionFactory interface {
	NewSession(ctx context.Context, handler EventHandler) (Session, error)
}

// Storage owns the on-disk session profile.
type Storage interface {
	Wipe() error
}

// Status is pushed to live listeners on every lifecycle transition.
type Status struct {
	State         string    `json:"state"`
	Initializing  bool      `json:"initializing"`
	Connected     bool      `json:"connected"`
	PairingNeeded bool      `json:"pairingNeeded"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

// Broadcaster delivers status updates to live listeners, best effort.
type Broadcaster interface {
	Broadcast(Status)
}

// BroadcasterFunc adapts a function to Broadcaster.
type BroadcasterFunc func(Status)

func (f BroadcasterFunc) Broadcast(s Status) { f(s) }

// Broadcasters fans a status out to several broadcasters in order.
type Broadcasters []Broadcaster

func (bs Broadcasters) Broadcast(s Status) {
	for _, b := range bs {
		if b != nil {
			b.Broadcast(s)
		}
	}
}
