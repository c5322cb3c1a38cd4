// Package trigger turns portal events into notification requests.
//
// Each trigger picks its channels from a fixed policy table. WhatsApp is
// only requested when the policy allows it and the client is ready at the
// time the event is handled.
package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

//go:generate mockgen -source=trigger.go -destination=../../mocks/service/trigger/mock.go -package=mocks

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrInvalidPayload = errors.New("invalid event payload")
)

// Event types accepted by Dispatch.
const (
	EventJobMatch           = "job_match"
	EventPaymentSuccess     = "payment_success"
	EventInterviewScheduled = "interview_scheduled"
	EventSelection          = "selection"
	EventExpiryReminder     = "expiry_reminder"
	EventUrgentAlert        = "urgent_alert"
)

var validate = validator.New()

type notifier interface {
	Notify(ctx context.Context, req model.NotifyRequest) (model.Notification, error)
}

type readiness interface {
	IsReady() bool
}

type policy struct {
	kind     model.NotificationType
	category string
	channels []model.Channel
	whatsapp bool
}

var policies = map[string]policy{
	EventJobMatch: {
		kind:     model.TypeJob,
		category: "job_match",
		channels: []model.Channel{model.ChannelDashboard},
		whatsapp: true,
	},
	EventPaymentSuccess: {
		kind:     model.TypePayment,
		category: "payment_success",
		channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
	},
	EventInterviewScheduled: {
		kind:     model.TypeInterview,
		category: "interview",
		channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
		whatsapp: true,
	},
	EventSelection: {
		kind:     model.TypeStatus,
		category: "application_status",
		channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
		whatsapp: true,
	},
	EventExpiryReminder: {
		kind:     model.TypeSystem,
		category: "subscription_expiry",
		channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
		whatsapp: true,
	},
	EventUrgentAlert: {
		kind:     model.TypeSystem,
		category: "urgent",
		channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
		whatsapp: true,
	},
}

// JobMatch is published when a new job matches a seeker's profile.
type JobMatch struct {
	JobID    string `json:"job_id" validate:"required"`
	JobTitle string `json:"job_title" validate:"required"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// PaymentSuccess is published once a payment is captured.
type PaymentSuccess struct {
	OrderID  string  `json:"order_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Currency string  `json:"currency"`
	Plan     string  `json:"plan"`
}

// InterviewScheduled is published when an employer books an interview.
type InterviewScheduled struct {
	JobTitle    string    `json:"job_title" validate:"required"`
	Company     string    `json:"company"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Mode        string    `json:"mode"` // online, onsite, phone
	Link        string    `json:"link"`
}

// Selection is published when an application changes status.
type Selection struct {
	JobTitle string `json:"job_title" validate:"required"`
	Company  string `json:"company"`
	Status   string `json:"status" validate:"required"`
}

// ExpiryReminder is published ahead of a subscription running out.
type ExpiryReminder struct {
	Plan      string    `json:"plan" validate:"required"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

// UrgentAlert is an operator authored message.
type UrgentAlert struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Link    string `json:"link"`
}

// Triggers builds notifications for portal events. It holds no state.
type Triggers struct {
	notifier notifier
	tracker  readiness
}

func New(n notifier, tracker readiness) *Triggers {
	return &Triggers{notifier: n, tracker: tracker}
}

func (t *Triggers) JobMatch(ctx context.Context, userID string, e JobMatch) (model.Notification, error) {
	msg := fmt.Sprintf("A new job matches your profile: %s", e.JobTitle)
	if e.Company != "" {
		msg += " at " + e.Company
	}
	if e.Location != "" {
		msg += " (" + e.Location + ")"
	}

	return t.fire(ctx, EventJobMatch, userID, "New job match", msg, e.Link, map[string]any{
		"job_id": e.JobID,
	})
}

func (t *Triggers) PaymentSuccess(ctx context.Context, userID string, e PaymentSuccess) (model.Notification, error) {
	currency := e.Currency
	if currency == "" {
		currency = "INR"
	}

	msg := fmt.Sprintf("We received your payment of %.2f %s", e.Amount, currency)
	if e.Plan != "" {
		msg += " for the " + e.Plan + " plan"
	}
	msg += ". Order " + e.OrderID + "."

	return t.fire(ctx, EventPaymentSuccess, userID, "Payment successful", msg, "", map[string]any{
		"order_id": e.OrderID,
		"amount":   e.Amount,
	})
}

func (t *Triggers) InterviewScheduled(ctx context.Context, userID string, e InterviewScheduled) (model.Notification, error) {
	msg := fmt.Sprintf("Your interview for %s", e.JobTitle)
	if e.Company != "" {
		msg += " at " + e.Company
	}
	msg += " is scheduled for " + e.ScheduledAt.Format("02 Jan 2006 15:04 MST")
	if e.Mode != "" {
		msg += " (" + e.Mode + ")"
	}
	msg += "."

	return t.fire(ctx, EventInterviewScheduled, userID, "Interview scheduled", msg, e.Link, map[string]any{
		"scheduled_at": e.ScheduledAt,
	})
}

func (t *Triggers) Selection(ctx context.Context, userID string, e Selection) (model.Notification, error) {
	msg := fmt.Sprintf("Your application for %s", e.JobTitle)
	if e.Company != "" {
		msg += " at " + e.Company
	}
	msg += " is now: " + e.Status

	return t.fire(ctx, EventSelection, userID, "Application update", msg, "", map[string]any{
		"status": e.Status,
	})
}

func (t *Triggers) ExpiryReminder(ctx context.Context, userID string, e ExpiryReminder) (model.Notification, error) {
	msg := fmt.Sprintf("Your %s subscription expires on %s. Renew to keep your benefits.",
		e.Plan, e.ExpiresAt.Format("02 Jan 2006"))

	return t.fire(ctx, EventExpiryReminder, userID, "Subscription expiring", msg, "", map[string]any{
		"plan":       e.Plan,
		"expires_at": e.ExpiresAt,
	})
}

func (t *Triggers) UrgentAlert(ctx context.Context, userID string, e UrgentAlert) (model.Notification, error) {
	return t.fire(ctx, EventUrgentAlert, userID, e.Title, e.Message, e.Link, nil)
}

// Dispatch decodes data for eventType and runs the matching trigger.
func (t *Triggers) Dispatch(ctx context.Context, eventType, userID string, data json.RawMessage) (model.Notification, error) {
	switch eventType {
	case EventJobMatch:
		var e JobMatch
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.JobMatch(ctx, userID, e)
	case EventPaymentSuccess:
		var e PaymentSuccess
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.PaymentSuccess(ctx, userID, e)
	case EventInterviewScheduled:
		var e InterviewScheduled
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.InterviewScheduled(ctx, userID, e)
	case EventSelection:
		var e Selection
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.Selection(ctx, userID, e)
	case EventExpiryReminder:
		var e ExpiryReminder
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.ExpiryReminder(ctx, userID, e)
	case EventUrgentAlert:
		var e UrgentAlert
		if err := decode(data, &e); err != nil {
			return model.Notification{}, err
		}
		return t.UrgentAlert(ctx, userID, e)
	default:
		return model.Notification{}, fmt.Errorf("%w: %q", ErrUnknownEvent, eventType)
	}
}

// Known reports whether eventType has a trigger.
func Known(eventType string) bool {
	_, ok := policies[eventType]
	return ok
}

func (t *Triggers) fire(
	ctx context.Context,
	eventType, userID, title, message, link string,
	meta map[string]any,
) (model.Notification, error) {
	p := policies[eventType]

	return t.notifier.Notify(ctx, model.NotifyRequest{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     p.kind,
		Category: p.category,
		Link:     link,
		Channels: t.channels(p),
		Meta:     meta,
	})
}

func (t *Triggers) channels(p policy) []model.Channel {
	channels := append([]model.Channel(nil), p.channels...)
	if p.whatsapp && t.tracker.IsReady() {
		channels = append(channels, model.ChannelWhatsApp)
	}
	return channels
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
