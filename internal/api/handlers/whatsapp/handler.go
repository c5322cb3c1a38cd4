package whatsapp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skip2/go-qrcode"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/api/dto"
	"github.com/aliskhannn/hire-notifier/internal/api/respond"
	"github.com/aliskhannn/hire-notifier/internal/model"
	"github.com/aliskhannn/hire-notifier/internal/repository/audit"
	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/whatsapp/mock.go -package=mocks

const qrSize = 256

type statusReader interface {
	IsReady() bool
	IsBusy() bool
	PairingInfo() (whatsapp.PairingInfo, bool)
	Snapshot(message string) whatsapp.Status
}

type lifecycle interface {
	Logout(ctx context.Context) error
	RequestPairingRefresh(ctx context.Context) error
}

type sender interface {
	Send(ctx context.Context, recipient, body, mediaURL string) model.DeliveryResult
	SendBulk(ctx context.Context, recipients []string, body, mediaURL string) []whatsapp.BulkResult
	Contacts(ctx context.Context) ([]whatsapp.Contact, error)
}

type auditSink interface {
	Record(ctx context.Context, entries []audit.Entry) error
}

// Handler exposes the WhatsApp channel over HTTP. Apart from malformed
// input, every endpoint answers 200 with a success flag.
type Handler struct {
	tracker   statusReader
	lifecycle lifecycle
	sender    sender
	audit     auditSink
	validator *validator.Validate
}

func NewHandler(
	tracker statusReader,
	lc lifecycle,
	s sender,
	a auditSink,
	v *validator.Validate,
) *Handler {
	return &Handler{tracker: tracker, lifecycle: lc, sender: s, audit: a, validator: v}
}

// Status returns the current connection state.
func (h *Handler) Status(c *ginext.Context) {
	respond.OK(c.Writer, h.tracker.Snapshot(statusMessage(h.tracker)))
}

// QR returns the pending pairing code as a scannable image.
func (h *Handler) QR(c *ginext.Context) {
	if h.tracker.IsReady() {
		respond.Message(c.Writer, true, "whatsapp is already connected")
		return
	}

	info, ok := h.tracker.PairingInfo()
	if !ok {
		if h.tracker.IsBusy() {
			respond.Message(c.Writer, false, "QR code is not generated yet, try again shortly")
			return
		}
		respond.Message(c.Writer, false, "no QR code available, request a reconnect")
		return
	}

	png, err := qrcode.Encode(info.Code, qrcode.Medium, qrSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to render pairing code")
		respond.Message(c.Writer, false, "failed to render QR code")
		return
	}

	respond.OK(c.Writer, dto.QRResponse{
		QR:        "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		ExpiresAt: info.ExpiresAt,
	})
}

// Logout unlinks the device and clears the stored session.
func (h *Handler) Logout(c *ginext.Context) {
	if err := h.lifecycle.Logout(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("whatsapp logout finished with errors")
		respond.Message(c.Writer, false, "logged out, but the stored session could not be removed")
		return
	}

	respond.Message(c.Writer, true, "whatsapp logged out")
}

// Reconnect drops any pairing code and starts a fresh connection attempt.
func (h *Handler) Reconnect(c *ginext.Context) {
	err := h.lifecycle.RequestPairingRefresh(c.Request.Context())

	switch {
	case err == nil:
		respond.Message(c.Writer, true, "reconnecting, fetch the QR code shortly")
	case errors.Is(err, whatsapp.ErrAlreadyConnected):
		respond.Message(c.Writer, true, "whatsapp is already connected")
	case errors.Is(err, whatsapp.ErrInitializing):
		respond.Message(c.Writer, false, "initialization already in progress")
	default:
		zlog.Logger.Error().Err(err).Msg("failed to reconnect whatsapp")
		respond.Message(c.Writer, false, "failed to start whatsapp client")
	}
}

// Send delivers a text message.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendRequest
	if !h.decode(c, &req) {
		return
	}

	res := h.sender.Send(c.Request.Context(), req.Recipient, req.Message, "")
	h.single(c, req.Recipient, res)
}

// SendMedia delivers a media attachment with an optional caption.
func (h *Handler) SendMedia(c *ginext.Context) {
	var req dto.SendMediaRequest
	if !h.decode(c, &req) {
		return
	}

	res := h.sender.Send(c.Request.Context(), req.Recipient, req.Caption, req.MediaURL)
	h.single(c, req.Recipient, res)
}

// SendBulk delivers the same message to many recipients. When a campaign
// id is given every outcome is written to the audit log.
func (h *Handler) SendBulk(c *ginext.Context) {
	var req dto.SendBulkRequest
	if !h.decode(c, &req) {
		return
	}

	if !h.tracker.IsReady() {
		respond.Message(c.Writer, false, userMessage(whatsapp.ErrNotReady))
		return
	}

	ctx := c.Request.Context()
	results := h.sender.SendBulk(ctx, req.Recipients, req.Message, req.MediaURL)

	resp := dto.SendBulkResponse{Total: len(results), Results: make([]dto.SendResponse, 0, len(results))}
	for _, r := range results {
		if r.Success {
			resp.Sent++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, toResponse(r.Recipient, r.DeliveryResult))
	}

	if req.CampaignID != "" {
		h.record(ctx, req.CampaignID, results)
	}

	zlog.Logger.Info().
		Str("campaign_id", req.CampaignID).
		Int("sent", resp.Sent).
		Int("failed", resp.Failed).
		Msg("whatsapp bulk send finished")

	respond.JSON(c.Writer, http.StatusOK, respond.Envelope{
		Success: resp.Sent > 0,
		Result:  resp,
		Message: fmt.Sprintf("sent %d of %d messages", resp.Sent, resp.Total),
	})
}

// Contacts lists the address book of the linked account.
func (h *Handler) Contacts(c *ginext.Context) {
	contacts, err := h.sender.Contacts(c.Request.Context())
	if err != nil {
		if !errors.Is(err, whatsapp.ErrNotReady) {
			zlog.Logger.Error().Err(err).Msg("failed to list whatsapp contacts")
		}
		respond.Message(c.Writer, false, userMessage(err))
		return
	}

	respond.OK(c.Writer, contacts)
}

func (h *Handler) decode(c *ginext.Context, v any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
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

func (h *Handler) single(c *ginext.Context, recipient string, res model.DeliveryResult) {
	out := toResponse(recipient, res)
	if !res.Success {
		respond.JSON(c.Writer, http.StatusOK, respond.Envelope{Success: false, Result: out, Message: out.Error})
		return
	}

	respond.JSON(c.Writer, http.StatusOK, respond.Envelope{Success: true, Result: out, Message: "message sent"})
}

func (h *Handler) record(ctx context.Context, campaignID string, results []whatsapp.BulkResult) {
	if h.audit == nil {
		return
	}

	now := time.Now().UTC()
	entries := make([]audit.Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, audit.Entry{
			CampaignID:        campaignID,
			Recipient:         r.Recipient,
			Success:           r.Success,
			ProviderMessageID: r.MessageID,
			Error:             r.Error,
			CreatedAt:         now,
		})
	}

	if err := h.audit.Record(ctx, entries); err != nil {
		zlog.Logger.Error().Err(err).Str("campaign_id", campaignID).Msg("failed to record delivery audit")
	}
}

func toResponse(recipient string, res model.DeliveryResult) dto.SendResponse {
	out := dto.SendResponse{Recipient: recipient, Success: res.Success, MessageID: res.MessageID}
	if !res.Success {
		out.Error = userMessage(res.Err)
	}
	return out
}

// userMessage hides provider errors behind a fixed set of messages.
func userMessage(err error) string {
	switch {
	case errors.Is(err, whatsapp.ErrNotReady):
		return "whatsapp client is not ready, scan the QR code or reconnect"
	case errors.Is(err, whatsapp.ErrInvalidRecipient):
		return "invalid recipient phone number"
	default:
		return "failed to send whatsapp message"
	}
}

func statusMessage(t statusReader) string {
	switch {
	case t.IsReady():
		return "whatsapp client is ready"
	case t.IsBusy():
		return "whatsapp client is initializing"
	}
	if _, ok := t.PairingInfo(); ok {
		return "scan the QR code to link WhatsApp"
	}
	return "whatsapp client is disconnected"
}
