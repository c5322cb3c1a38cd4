package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Channel is a delivery mechanism for a notification.
type Channel string

const (
	ChannelDashboard Channel = "dashboard"
	ChannelEmail     Channel = "email"
	ChannelWhatsApp  Channel = "whatsapp"
)

// ParseChannel converts user input into a Channel. "messaging" is accepted
// as an alias of the WhatsApp channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ChannelDashboard):
		return ChannelDashboard, nil
	case string(ChannelEmail):
		return ChannelEmail, nil
	case string(ChannelWhatsApp), "messaging":
		return ChannelWhatsApp, nil
	default:
		return "", fmt.Errorf("unknown channel %q", s)
	}
}

// ParseChannels converts a list of user supplied channel names, dropping duplicates.
func ParseChannels(values []string) ([]Channel, error) {
	channels := make([]Channel, 0, len(values))
	for _, v := range values {
		ch, err := ParseChannel(v)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}

	return Dedup(channels), nil
}

// Dedup returns channels without duplicates, keeping the first occurrence order.
func Dedup(channels []Channel) []Channel {
	seen := make(map[Channel]struct{}, len(channels))
	out := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		out = append(out, ch)
	}

	return out
}

// HasChannel reports whether ch is present in channels.
func HasChannel(channels []Channel, ch Channel) bool {
	for _, c := range channels {
		if c == ch {
			return true
		}
	}
	return false
}

// NotificationType classifies a notification for the dashboard.
type NotificationType string

const (
	TypeJob       NotificationType = "job"
	TypePayment   NotificationType = "payment"
	TypeInterview NotificationType = "interview"
	TypeStatus    NotificationType = "status"
	TypeSystem    NotificationType = "system"
)

// SentStatus records which channels delivered the notification.
type SentStatus struct {
	Dashboard bool `json:"dashboard"`
	Email     bool `json:"email"`
	WhatsApp  bool `json:"whatsapp"`
}

// Notification represents a notification record owned by the fan-out service.
type Notification struct {
	ID         uuid.UUID        `json:"id"`             // unique identifier of the record
	UserID     string           `json:"user_id"`        // recipient user
	Title      string           `json:"title"`          // short headline
	Message    string           `json:"message"`        // body shown on every channel
	Type       NotificationType `json:"type"`           // job, payment, interview, status, system
	Category   string           `json:"category"`       // finer grained grouping, e.g. "job_match"
	Link       string           `json:"link,omitempty"` // optional deep link into the portal
	Channels   []Channel        `json:"channels"`       // channels actually attempted
	Meta       map[string]any   `json:"meta,omitempty"` // free-form trigger data
	IsRead     bool             `json:"is_read"`        // set once the user opened it
	SentStatus SentStatus       `json:"sent_status"`    // per-channel delivery outcome
	CreatedAt  time.Time        `json:"created_at"`     // creation timestamp
	ExpiresAt  time.Time        `json:"expires_at"`     // records past this point are pruned
}

// NotifyRequest is the input of a single fan-out call.
type NotifyRequest struct {
	UserID   string
	Title    string
	Message  string
	Type     NotificationType
	Category string
	Link     string
	Channels []Channel
	Meta     map[string]any
}
