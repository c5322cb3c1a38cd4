package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/api/dto"
	"github.com/aliskhannn/hire-notifier/internal/api/respond"
	"github.com/aliskhannn/hire-notifier/internal/model"
	"github.com/aliskhannn/hire-notifier/internal/repository/notification"
)

// notificationService defines the operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Notify(ctx context.Context, req model.NotifyRequest) (model.Notification, error)
	NotifyBulk(ctx context.Context, userIDs []string, tmpl model.NotifyRequest) ([]model.Notification, error)
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	GetDeliveryStatus(ctx context.Context, id uuid.UUID) (model.SentStatus, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, userID string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler handles HTTP requests related to dashboard notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create handles POST /api/notifications.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateNotificationRequest
	if !h.decode(c, &req) {
		return
	}

	channels, err := model.ParseChannels(req.Channels)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid channels")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	n, err := h.service.Notify(c.Request.Context(), model.NotifyRequest{
		UserID:   req.UserID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     model.NotificationType(req.Type),
		Category: req.Category,
		Link:     req.Link,
		Channels: channels,
		Meta:     req.Meta,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, n)
}

// CreateBulk handles POST /api/notifications/bulk.
func (h *Handler) CreateBulk(c *ginext.Context) {
	var req dto.BulkNotificationRequest
	if !h.decode(c, &req) {
		return
	}

	channels, err := model.ParseChannels(req.Channels)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid channels")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	records, err := h.service.NotifyBulk(c.Request.Context(), req.UserIDs, model.NotifyRequest{
		Title:    req.Title,
		Message:  req.Message,
		Type:     model.NotificationType(req.Type),
		Category: req.Category,
		Link:     req.Link,
		Channels: channels,
		Meta:     req.Meta,
	})

	failed := 0
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			failed = len(merr.Errors)
		} else {
			failed = len(req.UserIDs) - len(records)
		}
		zlog.Logger.Error().Err(err).Int("failed", failed).Msg("bulk notification partially failed")
	}

	if len(records) == 0 && err != nil {
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, dto.BulkNotificationResponse{Created: len(records), Failed: failed, Notifications: records})
}

// List handles GET /api/notifications?user_id=&unread=.
func (h *Handler) List(c *ginext.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		zlog.Logger.Warn().Msg("missing user_id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user_id"))
		return
	}

	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid unread flag"))
			return
		}
		unreadOnly = v
	}

	list, err := h.service.ListForUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

// GetStatus handles GET /api/notifications/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetDeliveryStatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get notification status")
		return
	}

	respond.OK(c.Writer, status)
}

// MarkAsRead handles PATCH /api/notifications/:id/read?user_id=.
func (h *Handler) MarkAsRead(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user_id"))
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		h.fail(c, id, err, "failed to mark notification as read")
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// Delete handles DELETE /api/notifications/:id.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, id, err, "failed to delete notification")
		return
	}

	respond.OK(c.Writer, "notification deleted")
}

func (h *Handler) decode(c *ginext.Context, v any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(v); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) fail(c *ginext.Context, id uuid.UUID, err error, msg string) {
	if errors.Is(err, notification.ErrNotificationNotFound) {
		zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		return
	}

	zlog.Logger.Error().Err(err).Str("id", id.String()).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
