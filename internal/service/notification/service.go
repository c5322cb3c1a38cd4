package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

const defaultTTL = 30 * 24 * time.Hour

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (uuid.UUID, error)
	UpdateSentStatus(context.Context, uuid.UUID, model.SentStatus) error
	GetSentStatusByID(context.Context, uuid.UUID) (model.SentStatus, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, userID string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type contactDirectory interface {
	GetContact(ctx context.Context, userID string) (model.Contact, error)
}

type emailSender interface {
	SendEmail(ctx context.Context, userID, subject, body string) bool
}

type messageSender interface {
	Send(ctx context.Context, recipient, body, mediaURL string) model.DeliveryResult
}

type readiness interface {
	IsReady() bool
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type observer interface {
	ObserveNotification()
	ObserveDelivery(channel, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveNotification()           {}
func (nopObserver) ObserveDelivery(string, string) {}

// Options configures the fan-out service.
type Options struct {
	TTL   time.Duration  // lifetime of a record before pruning
	Retry retry.Strategy // cache retry strategy
	Clock clockwork.Clock
}

// Service persists notifications and fans them out to the dashboard, email
// and WhatsApp channels.
type Service struct {
	repo     notificationRepository
	contacts contactDirectory
	email    emailSender
	whatsapp messageSender
	tracker  readiness
	cache    cache
	observer observer
	opts     Options
}

func NewService(
	repo notificationRepository,
	contacts contactDirectory,
	email emailSender,
	whatsapp messageSender,
	tracker readiness,
	cache cache,
	observer observer,
	opts Options,
) *Service {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Service{
		repo:     repo,
		contacts: contacts,
		email:    email,
		whatsapp: whatsapp,
		tracker:  tracker,
		cache:    cache,
		observer: observer,
		opts:     opts,
	}
}

// Notify persists a record for req and attempts every available channel.
// Channel failures leave the matching sent flag false and never fail the call.
func (s *Service) Notify(ctx context.Context, req model.NotifyRequest) (model.Notification, error) {
	return s.notify(ctx, req, s.availableChannels(req.Channels))
}

// NotifyBulk sends the same notification to every user in order. Channel
// availability is decided once for the whole batch. Users whose record
// could not be persisted are skipped and reported in the returned error.
func (s *Service) NotifyBulk(ctx context.Context, userIDs []string, tmpl model.NotifyRequest) ([]model.Notification, error) {
	channels := s.availableChannels(tmpl.Channels)

	var errs *multierror.Error
	records := make([]model.Notification, 0, len(userIDs))

	for _, userID := range userIDs {
		req := tmpl
		req.UserID = userID

		n, err := s.notify(ctx, req, channels)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}

		records = append(records, n)
	}

	return records, errs.ErrorOrNil()
}

// availableChannels drops the WhatsApp channel unless the client is ready.
// Dropped channels are not queued for later.
func (s *Service) availableChannels(requested []model.Channel) []model.Channel {
	ready := s.tracker.IsReady()

	out := make([]model.Channel, 0, len(requested))
	for _, ch := range model.Dedup(requested) {
		if ch == model.ChannelWhatsApp && !ready {
			continue
		}
		out = append(out, ch)
	}

	return out
}

func (s *Service) notify(ctx context.Context, req model.NotifyRequest, channels []model.Channel) (model.Notification, error) {
	now := s.opts.Clock.Now()

	n := model.Notification{
		UserID:   req.UserID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		Category: req.Category,
		Link:     req.Link,
		Channels: channels,
		Meta:     req.Meta,
		SentStatus: model.SentStatus{
			Dashboard: model.HasChannel(channels, model.ChannelDashboard),
		},
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.TTL),
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	n.ID = id
	s.observer.ObserveNotification()

	wantEmail := model.HasChannel(channels, model.ChannelEmail)
	wantWhatsApp := model.HasChannel(channels, model.ChannelWhatsApp)

	if wantEmail || wantWhatsApp {
		var emailSent, whatsappSent bool
		var g errgroup.Group

		if wantEmail {
			g.Go(func() error {
				emailSent = s.email.SendEmail(ctx, n.UserID, n.Title, n.Message)
				s.observer.ObserveDelivery(string(model.ChannelEmail), outcome(emailSent))
				return nil
			})
		}

		if wantWhatsApp {
			g.Go(func() error {
				whatsappSent = s.sendWhatsApp(ctx, n)
				s.observer.ObserveDelivery(string(model.ChannelWhatsApp), outcome(whatsappSent))
				return nil
			})
		}

		_ = g.Wait()

		n.SentStatus.Email = emailSent
		n.SentStatus.WhatsApp = whatsappSent

		if err := s.repo.UpdateSentStatus(ctx, n.ID, n.SentStatus); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to update sent status")
		}
	}

	s.cacheStatus(ctx, n.ID, n.SentStatus)

	return n, nil
}

func (s *Service) sendWhatsApp(ctx context.Context, n model.Notification) bool {
	contact, err := s.contacts.GetContact(ctx, n.UserID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", n.UserID).Msg("failed to resolve whatsapp recipient")
		return false
	}

	if contact.Phone == "" {
		zlog.Logger.Warn().Str("user_id", n.UserID).Msg("user has no phone number")
		return false
	}

	res := s.whatsapp.Send(ctx, contact.Phone, whatsappBody(n), "")
	if !res.Success {
		zlog.Logger.Error().Str("user_id", n.UserID).Str("error", res.Error).Msg("failed to send whatsapp notification")
		return false
	}

	return true
}

func whatsappBody(n model.Notification) string {
	var b strings.Builder
	b.WriteString("*" + n.Title + "*\n\n")
	b.WriteString(n.Message)
	if n.Link != "" {
		b.WriteString("\n\n" + n.Link)
	}
	return b.String()
}

// GetDeliveryStatus returns the sent flags of a notification, reading
// through the cache.
func (s *Service) GetDeliveryStatus(ctx context.Context, id uuid.UUID) (model.SentStatus, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.opts.Retry, statusKey(id))
	if err == nil {
		var status model.SentStatus
		if jsonErr := json.Unmarshal([]byte(cached), &status); jsonErr == nil {
			return status, nil
		}
		zlog.Logger.Warn().Str("id", id.String()).Msg("dropping malformed cached status")
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	status, err := s.repo.GetSentStatusByID(ctx, id)
	if err != nil {
		return model.SentStatus{}, fmt.Errorf("get sent status: %w", err)
	}

	s.cacheStatus(ctx, id, status)

	return status, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.repo.MarkAsRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark as read: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

// PruneExpired removes records past their expiry.
func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.opts.Clock.Now())
	if err != nil {
		return 0, fmt.Errorf("prune notifications: %w", err)
	}

	return n, nil
}

func (s *Service) cacheStatus(ctx context.Context, id uuid.UUID, status model.SentStatus) {
	b, err := json.Marshal(status)
	if err != nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.opts.Retry, statusKey(id), string(b)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}

func statusKey(id uuid.UUID) string {
	return "notification:status:" + id.String()
}

func outcome(ok bool) string {
	if ok {
		return "sent"
	}
	return "failed"
}
