package event

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/api/dto"
	"github.com/aliskhannn/hire-notifier/internal/api/respond"
	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/hire-notifier/internal/service/trigger"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type publisher interface {
	Publish(msg queue.EventMessage, strategy retry.Strategy) error
}

// Handler accepts portal events and queues them for the trigger workers.
type Handler struct {
	publisher publisher
	validator *validator.Validate
	strategy  retry.Strategy
}

func NewHandler(p publisher, v *validator.Validate, strategy retry.Strategy) *Handler {
	return &Handler{publisher: p, validator: v, strategy: strategy}
}

// Publish queues an event. The payload is validated by the consumer.
func (h *Handler) Publish(c *ginext.Context) {
	var req dto.PublishEventRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if !trigger.Known(req.Type) {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown event type %q", req.Type))
		return
	}

	msg := queue.EventMessage{
		ID:         uuid.New(),
		Type:       req.Type,
		UserID:     req.UserID,
		Data:       req.Data,
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.Publish(msg, h.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("type", msg.Type).Msg("failed to publish event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	zlog.Logger.Info().Str("id", msg.ID.String()).Str("type", msg.Type).Str("user_id", msg.UserID).Msg("event queued")

	respond.JSON(c.Writer, http.StatusAccepted, respond.Envelope{Success: true, Result: msg.ID})
}
