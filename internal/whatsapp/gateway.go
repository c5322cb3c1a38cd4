package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/semaphore"

	"github.com/aliskhannn/hire-notifier/internal/model"
)

const defaultMaxMediaBytes = 16 << 20

type readiness interface {
	IsReady() bool
}

type sessionSource interface {
	Session() Session
}

type messageObserver interface {
	ObserveMessage(outcome string)
}

// GatewayOptions configures outbound sends.
type GatewayOptions struct {
	CountryCode     string        // prepended to ten digit local numbers
	MediaTimeout    time.Duration // timeout for fetching media attachments
	MaxMediaBytes   int64         // attachments above this size are rejected
	BulkConcurrency int           // parallel sends in SendBulk
	BulkPause       time.Duration // pause after each bulk send
}

// BulkResult is the outcome of one recipient of SendBulk.
type BulkResult struct {
	Recipient string `json:"recipient"`
	model.DeliveryResult
}

// Gateway sends WhatsApp messages through the live session. It never
// retries and never returns errors; outcomes are reported as DeliveryResult.
type Gateway struct {
	tracker  readiness
	sessions sessionSource
	client   *http.Client
	observer messageObserver
	opts     GatewayOptions
}

// NewGateway creates a Gateway reading readiness from tracker and the live
// session from sessions.
func NewGateway(tracker readiness, sessions sessionSource, observer messageObserver, opts GatewayOptions) *Gateway {
	if opts.MaxMediaBytes <= 0 {
		opts.MaxMediaBytes = defaultMaxMediaBytes
	}
	if opts.BulkConcurrency <= 0 {
		opts.BulkConcurrency = 1
	}

	return &Gateway{
		tracker:  tracker,
		sessions: sessions,
		client:   &http.Client{Timeout: opts.MediaTimeout},
		observer: observer,
		opts:     opts,
	}
}

// Send delivers body to recipient. When mediaURL is set the media is
// fetched and sent as an attachment with body as caption.
func (g *Gateway) Send(ctx context.Context, recipient, body, mediaURL string) model.DeliveryResult {
	var media *Media
	if mediaURL != "" {
		if _, err := g.liveSession(); err != nil {
			return g.fail(err)
		}

		m, err := g.fetchMedia(ctx, mediaURL)
		if err != nil {
			return g.fail(fmt.Errorf("%w: fetch media: %v", ErrSendFailure, err))
		}
		media = &m
	}

	return g.deliver(ctx, recipient, body, media)
}

// SendBulk sends the same message to every recipient, at most
// BulkConcurrency at a time. Results keep the order of recipients.
func (g *Gateway) SendBulk(ctx context.Context, recipients []string, body, mediaURL string) []BulkResult {
	results := make([]BulkResult, len(recipients))

	if _, err := g.liveSession(); err != nil {
		for i, r := range recipients {
			results[i] = BulkResult{Recipient: r, DeliveryResult: g.fail(err)}
		}
		return results
	}

	var media *Media
	if mediaURL != "" {
		m, err := g.fetchMedia(ctx, mediaURL)
		if err != nil {
			res := g.fail(fmt.Errorf("%w: fetch media: %v", ErrSendFailure, err))
			for i, r := range recipients {
				results[i] = BulkResult{Recipient: r, DeliveryResult: res}
			}
			return results
		}
		media = &m
	}

	sem := semaphore.NewWeighted(int64(g.opts.BulkConcurrency))
	var wg sync.WaitGroup

	for i, r := range recipients {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = BulkResult{Recipient: r, DeliveryResult: g.fail(err)}
			continue
		}

		wg.Add(1)
		go func(i int, r string) {
			defer wg.Done()
			defer sem.Release(1)

			results[i] = BulkResult{Recipient: r, DeliveryResult: g.deliver(ctx, r, body, media)}
			g.pause(ctx)
		}(i, r)
	}

	wg.Wait()

	return results
}

// Contacts lists the address book of the connected account.
func (g *Gateway) Contacts(ctx context.Context) ([]Contact, error) {
	sess, err := g.liveSession()
	if err != nil {
		return nil, err
	}

	contacts, err := sess.Contacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}

	return contacts, nil
}

func (g *Gateway) deliver(ctx context.Context, recipient, body string, media *Media) model.DeliveryResult {
	sess, err := g.liveSession()
	if err != nil {
		return g.fail(err)
	}

	phone, err := NormalizeRecipient(recipient, g.opts.CountryCode)
	if err != nil {
		return g.fail(err)
	}

	var id string
	if media != nil {
		id, err = sess.SendMedia(ctx, phone, *media, body)
	} else {
		id, err = sess.SendText(ctx, phone, body)
	}
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", phone).Msg("failed to send whatsapp message")
		return g.fail(fmt.Errorf("%w: %v", ErrSendFailure, err))
	}

	g.observe("sent")
	zlog.Logger.Info().Str("recipient", phone).Str("message_id", id).Msg("whatsapp message sent")

	return model.DeliveryResult{Success: true, MessageID: id}
}

// liveSession double checks the cached readiness against the session itself,
// since the cached flag can lag behind the connection.
func (g *Gateway) liveSession() (Session, error) {
	if !g.tracker.IsReady() {
		return nil, ErrNotReady
	}

	sess := g.sessions.Session()
	if sess == nil || !sess.IsConnected() {
		return nil, ErrNotReady
	}

	return sess, nil
}

func (g *Gateway) fetchMedia(ctx context.Context, rawURL string) (Media, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Media{}, fmt.Errorf("invalid media url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Media{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Media{}, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Media{}, fmt.Errorf("download: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, g.opts.MaxMediaBytes+1))
	if err != nil {
		return Media{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > g.opts.MaxMediaBytes {
		return Media{}, fmt.Errorf("media exceeds %d bytes", g.opts.MaxMediaBytes)
	}

	mt := mimetype.Detect(data)
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = "attachment" + mt.Extension()
	}

	return Media{Data: data, MimeType: mt.String(), FileName: name}, nil
}

func (g *Gateway) pause(ctx context.Context) {
	if g.opts.BulkPause <= 0 {
		return
	}

	t := time.NewTimer(g.opts.BulkPause)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (g *Gateway) fail(err error) model.DeliveryResult {
	switch {
	case errors.Is(err, ErrNotReady):
		g.observe("not_ready")
	case errors.Is(err, ErrInvalidRecipient):
		g.observe("invalid_recipient")
	default:
		g.observe("failed")
	}
	return model.Failed(err)
}

func (g *Gateway) observe(outcome string) {
	if g.observer != nil {
		g.observer.ObserveMessage(outcome)
	}
}
