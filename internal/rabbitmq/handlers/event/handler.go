package event

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/model"
	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/hire-notifier/internal/service/trigger"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/event/mock.go -package=mocks
type eventDispatcher interface {
	Dispatch(ctx context.Context, eventType, userID string, data json.RawMessage) (model.Notification, error)
}

type eventObserver interface {
	ObserveEvent(eventType, outcome string)
}

type Handler struct {
	triggers eventDispatcher
	observer eventObserver
}

func NewHandler(triggers eventDispatcher, observer eventObserver) *Handler {
	return &Handler{
		triggers: triggers,
		observer: observer,
	}
}

// HandleMessage runs the trigger for msg. Transient failures are retried
// with strategy; unknown types and malformed payloads are dropped at once.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.EventMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Str("event_id", msg.ID.String()).Str("type", msg.Type).Msg("handling event")

	var rejected error

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			n, err := h.triggers.Dispatch(ctx, msg.Type, msg.UserID, msg.Data)
			if errors.Is(err, trigger.ErrUnknownEvent) || errors.Is(err, trigger.ErrInvalidPayload) {
				rejected = err
				return nil
			}
			if err != nil {
				return err
			}

			zlog.Logger.Info().
				Str("event_id", msg.ID.String()).
				Str("notification_id", n.ID.String()).
				Msg("event notification created")
			return nil
		}
	}, strategy)

	switch {
	case rejected != nil:
		zlog.Logger.Warn().Err(rejected).Str("event_id", msg.ID.String()).Msg("event rejected")
		h.observe(msg.Type, "rejected")
	case err != nil:
		zlog.Logger.Error().Err(err).Str("event_id", msg.ID.String()).Msg("failed to handle event")
		h.observe(msg.Type, "failed")
	default:
		h.observe(msg.Type, "handled")
	}
}

func (h *Handler) observe(eventType, outcome string) {
	if h.observer != nil {
		h.observer.ObserveEvent(eventType, outcome)
	}
}
