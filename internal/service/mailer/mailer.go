// Package mailer resolves a user's address and sends them an email.
package mailer

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

//go:generate mockgen -source=mailer.go -destination=../../mocks/service/mailer/mock.go -package=mocks

type contactDirectory interface {
	GetContact(ctx context.Context, userID string) (model.Contact, error)
}

type transport interface {
	Send(to, subject, body string) error
}

// Mailer sends emails to users by id.
type Mailer struct {
	contacts  contactDirectory
	transport transport
}

// New creates a Mailer.
func New(contacts contactDirectory, transport transport) *Mailer {
	return &Mailer{contacts: contacts, transport: transport}
}

// SendEmail reports whether the email reached the SMTP server. Failures are
// logged, never returned.
func (m *Mailer) SendEmail(ctx context.Context, userID, subject, body string) bool {
	contact, err := m.contacts.GetContact(ctx, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to resolve email address")
		return false
	}

	if contact.Email == "" {
		zlog.Logger.Warn().Str("user_id", userID).Msg("user has no email address")
		return false
	}

	if err := m.transport.Send(contact.Email, subject, body); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to send email")
		return false
	}

	return true
}
