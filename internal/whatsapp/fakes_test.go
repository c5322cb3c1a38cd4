package whatsapp

import (
	"context"
	"strings"
	"sync"
)

type sentMessage struct {
	Phone   string
	Body    string
	Media   *Media
	Session *fakeSession
}

type fakeSession struct {
	mu sync.Mutex

	handler   EventHandler
	initErr   error
	logoutErr error
	sendErr   error
	connected bool
	contacts  []Contact

	// emitOnLogout makes Logout report a disconnect the way a real session does.
	emitOnLogout bool

	initialized bool
	destroyed   int
	sent        []sentMessage
}

func (s *fakeSession) emit(e Event) {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()
	h(e)
}

func (s *fakeSession) Initialize(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
	return s.initErr
}

func (s *fakeSession) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *fakeSession) SendText(_ context.Context, phone, body string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sent = append(s.sent, sentMessage{Phone: phone, Body: body})
	return "msg-" + phone, nil
}

func (s *fakeSession) SendMedia(_ context.Context, phone string, media Media, caption string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sent = append(s.sent, sentMessage{Phone: phone, Body: caption, Media: &media})
	return "media-" + phone, nil
}

func (s *fakeSession) Contacts(context.Context) ([]Contact, error) {
	return s.contacts, nil
}

func (s *fakeSession) Logout(context.Context) error {
	if s.emitOnLogout {
		s.emit(Event{Kind: EventDisconnected, Reason: "logout"})
	}
	return s.logoutErr
}

func (s *fakeSession) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed++
	s.connected = false
}

func (s *fakeSession) setConnected(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = v
}

func (s *fakeSession) destroyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

func (s *fakeSession) messages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

type fakeFactory struct {
	mu           sync.Mutex
	initErr      error
	emitOnLogout bool
	sessions     []*fakeSession
}

func (f *fakeFactory) NewSession(_ context.Context, handler EventHandler) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := &fakeSession{handler: handler, initErr: f.initErr, emitOnLogout: f.emitOnLogout}
	f.sessions = append(f.sessions, s)
	return s, nil
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

func (f *fakeFactory) session(i int) *fakeSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[i]
}

type fakeStorage struct {
	mu    sync.Mutex
	wipes int
}

func (s *fakeStorage) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wipes++
	return nil
}

func (s *fakeStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wipes
}

type recorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *recorder) Broadcast(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *recorder) last() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return Status{}
	}
	return r.statuses[len(r.statuses)-1]
}

func (r *recorder) saw(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.statuses {
		if strings.Contains(s.Message, substr) {
			return true
		}
	}
	return false
}
