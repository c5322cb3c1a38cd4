// Package meow implements whatsapp.Session on top of whatsmeow.
//
// The device keys live in a SQLite file under a single store directory,
// which Storage owns and wipes on logout or after the last failed start.
package meow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/wb-go/wbf/zlog"
	"go.mau.fi/whatsmeow"
	waE2E "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waTypes "go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"

	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
)

const storeFile = "session.db"

// Factory opens whatsmeow sessions backed by the store directory.
type Factory struct {
	dir string
}

// NewFactory creates a Factory keeping session data in dir.
func NewFactory(dir string) *Factory {
	return &Factory{dir: dir}
}

// NewSession opens the device store and builds a client whose events are
// translated and delivered to handler.
func (f *Factory) NewSession(ctx context.Context, handler whatsapp.EventHandler) (whatsapp.Session, error) {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(f.dir, storeFile))

	container, err := sqlstore.New(ctx, "sqlite3", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("load device: %w", err)
	}

	s := &session{
		client:    whatsmeow.NewClient(device, nil),
		container: container,
		handler:   handler,
	}
	// The manager rebuilds the session after a drop.
	s.client.EnableAutoReconnect = false
	s.client.AddEventHandler(s.dispatch)

	return s, nil
}

type session struct {
	client    *whatsmeow.Client
	container *sqlstore.Container

	mu        sync.Mutex
	handler   whatsapp.EventHandler
	destroyed bool
}

// Initialize connects the client. A device without an identity first
// requests a QR channel whose codes are reported as pairing codes.
func (s *session) Initialize(ctx context.Context) error {
	if s.client.Store.ID != nil {
		if err := s.client.Connect(); err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		return nil
	}

	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("get qr channel: %w", err)
	}

	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	go s.watchQR(qrChan)

	return nil
}

func (s *session) watchQR(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		switch item.Event {
		case whatsmeow.QRChannelEventCode:
			zlog.Logger.Debug().Int("code_len", len(item.Code)).Msg("whatsapp pairing code issued")
			s.emit(whatsapp.Event{Kind: whatsapp.EventPairingCode, Code: item.Code})
		case whatsmeow.QRChannelSuccess.Event:
			// PairSuccess already reports authentication.
		case whatsmeow.QRChannelTimeout.Event:
			s.emit(whatsapp.Event{Kind: whatsapp.EventDisconnected, Reason: "pairing timed out"})
		default:
			reason := item.Event
			if item.Error != nil {
				reason = item.Error.Error()
			}
			s.emit(whatsapp.Event{Kind: whatsapp.EventAuthFailed, Reason: reason})
		}
	}
}

func (s *session) dispatch(evt any) {
	switch v := evt.(type) {
	case *events.Connected:
		s.emit(whatsapp.Event{Kind: whatsapp.EventConnected})
	case *events.PairSuccess:
		s.emit(whatsapp.Event{Kind: whatsapp.EventAuthenticated})
	case *events.LoggedOut:
		s.emit(whatsapp.Event{Kind: whatsapp.EventDisconnected, Reason: fmt.Sprintf("logged out: %v", v.Reason)})
	case *events.StreamReplaced:
		s.emit(whatsapp.Event{Kind: whatsapp.EventDisconnected, Reason: "stream replaced"})
	case *events.Disconnected:
		s.emit(whatsapp.Event{Kind: whatsapp.EventDisconnected, Reason: "connection lost"})
	case *events.ConnectFailure:
		s.emit(whatsapp.Event{Kind: whatsapp.EventAuthFailed, Reason: fmt.Sprintf("%v %s", v.Reason, v.Message)})
	case *events.ClientOutdated:
		s.emit(whatsapp.Event{Kind: whatsapp.EventAuthFailed, Reason: "client outdated"})
	case *events.TemporaryBan:
		s.emit(whatsapp.Event{Kind: whatsapp.EventAuthFailed, Reason: v.String()})
	}
}

func (s *session) emit(e whatsapp.Event) {
	s.mu.Lock()
	handler := s.handler
	if s.destroyed {
		handler = nil
	}
	s.mu.Unlock()

	if handler != nil {
		handler(e)
	}
}

func (s *session) IsConnected() bool {
	return s.client.IsConnected() && s.client.IsLoggedIn()
}

func (s *session) SendText(ctx context.Context, phone, body string) (string, error) {
	msg := &waE2E.Message{Conversation: proto.String(body)}

	resp, err := s.client.SendMessage(ctx, userJID(phone), msg)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (s *session) SendMedia(ctx context.Context, phone string, media whatsapp.Media, caption string) (string, error) {
	isImage := strings.HasPrefix(media.MimeType, "image/")

	mediaType := whatsmeow.MediaDocument
	if isImage {
		mediaType = whatsmeow.MediaImage
	}

	up, err := s.client.Upload(ctx, media.Data, mediaType)
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}

	var msg *waE2E.Message
	if isImage {
		msg = &waE2E.Message{ImageMessage: &waE2E.ImageMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	} else {
		msg = &waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(media.MimeType),
			FileName:      proto.String(media.FileName),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	}

	resp, err := s.client.SendMessage(ctx, userJID(phone), msg)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (s *session) Contacts(ctx context.Context) ([]whatsapp.Contact, error) {
	all, err := s.client.Store.Contacts.GetAllContacts(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]whatsapp.Contact, 0, len(all))
	for jid, info := range all {
		if jid.Server != waTypes.DefaultUserServer {
			continue
		}

		name := info.FullName
		if name == "" {
			name = info.PushName
		}
		contacts = append(contacts, whatsapp.Contact{Phone: jid.User, Name: name})
	}

	return contacts, nil
}

func (s *session) Logout(ctx context.Context) error {
	if s.client.Store.ID == nil {
		return errors.New("session is not paired")
	}
	return s.client.Logout(ctx)
}

func (s *session) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.handler = nil
	s.mu.Unlock()

	s.client.RemoveEventHandlers()
	s.client.Disconnect()

	if err := s.container.Close(); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to close whatsapp device store")
	}
}

func userJID(phone string) waTypes.JID {
	return waTypes.NewJID(phone, waTypes.DefaultUserServer)
}
