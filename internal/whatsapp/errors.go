package whatsapp

import "errors"

var (
	// ErrNotReady is returned when the WhatsApp channel is not connected.
	ErrNotReady = errors.New("whatsapp client is not ready")
	// ErrInvalidRecipient is returned when a phone number cannot be normalised.
	ErrInvalidRecipient = errors.New("invalid recipient phone number")
	// ErrInitTimeout is reported when neither a pairing code nor a connection appeared in time.
	ErrInitTimeout = errors.New("whatsapp initialization timed out")
	// ErrInitFailure is reported once all start attempts failed.
	ErrInitFailure = errors.New("whatsapp initialization failed")
	// ErrAuthFailure is reported when the session was rejected; a manual reconnect is required.
	ErrAuthFailure = errors.New("whatsapp authentication failed")
	// ErrSendFailure wraps provider errors of a single send.
	ErrSendFailure = errors.New("whatsapp send failed")
	// ErrAlreadyConnected is returned by lifecycle operations that are no-ops while connected.
	ErrAlreadyConnected = errors.New("whatsapp client already connected")
	// ErrInitializing is returned by lifecycle operations that are no-ops while a start is in flight.
	ErrInitializing = errors.New("whatsapp client is initializing")
)
