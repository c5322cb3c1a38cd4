package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/hire-notifier/internal/mocks/service/notification"
	"github.com/aliskhannn/hire-notifier/internal/model"
)

type fixture struct {
	repo     *mocks.MocknotificationRepository
	contacts *mocks.MockcontactDirectory
	email    *mocks.MockemailSender
	whatsapp *mocks.MockmessageSender
	tracker  *mocks.Mockreadiness
	cache    *mocks.Mockcache
	clock    clockwork.FakeClock
	strategy retry.Strategy
	svc      *Service
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     mocks.NewMocknotificationRepository(ctrl),
		contacts: mocks.NewMockcontactDirectory(ctrl),
		email:    mocks.NewMockemailSender(ctrl),
		whatsapp: mocks.NewMockmessageSender(ctrl),
		tracker:  mocks.NewMockreadiness(ctrl),
		cache:    mocks.NewMockcache(ctrl),
		clock:    clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
		strategy: retry.Strategy{Attempts: 1},
	}

	f.svc = NewService(f.repo, f.contacts, f.email, f.whatsapp, f.tracker, f.cache, nil, Options{
		TTL:   720 * time.Hour,
		Retry: f.strategy,
		Clock: f.clock,
	})

	return f
}

func (f *fixture) expectCreate(id uuid.UUID, captured *model.Notification) {
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			if captured != nil {
				*captured = n
			}
			return id, nil
		},
	)
}

func (f *fixture) expectCache(id uuid.UUID) {
	f.cache.EXPECT().SetWithRetry(gomock.Any(), f.strategy, statusKey(id), gomock.Any()).Return(nil)
}

func TestService_Notify_EmailScenario(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	var created model.Notification

	f.tracker.EXPECT().IsReady().Return(false)
	f.expectCreate(id, &created)
	f.email.EXPECT().SendEmail(gomock.Any(), "u1", "Test", "Body").Return(true)
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id, model.SentStatus{Dashboard: true, Email: true}).Return(nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Test",
		Message:  "Body",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail},
	})
	require.NoError(t, err)

	assert.Equal(t, id, n.ID)
	assert.Equal(t, model.SentStatus{Dashboard: true, Email: true, WhatsApp: false}, n.SentStatus)

	// persisted before any channel was attempted
	assert.Equal(t, model.SentStatus{Dashboard: true}, created.SentStatus)
	assert.Equal(t, f.clock.Now(), created.CreatedAt)
	assert.Equal(t, f.clock.Now().Add(720*time.Hour), created.ExpiresAt)
}

func TestService_Notify_DropsWhatsAppWhenNotReady(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	var created model.Notification

	f.tracker.EXPECT().IsReady().Return(false)
	f.expectCreate(id, &created)
	f.email.EXPECT().SendEmail(gomock.Any(), "u1", "Test", "Body").Return(false)
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id, model.SentStatus{Dashboard: true}).Return(nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Test",
		Message:  "Body",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail, model.ChannelWhatsApp},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Channel{model.ChannelDashboard, model.ChannelEmail}, created.Channels)
	assert.Equal(t, []model.Channel{model.ChannelDashboard, model.ChannelEmail}, n.Channels)
	assert.False(t, n.SentStatus.WhatsApp)
	assert.False(t, n.SentStatus.Email)
}

func TestService_Notify_WhatsAppAndPartialFailure(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.tracker.EXPECT().IsReady().Return(true)
	f.expectCreate(id, nil)
	f.email.EXPECT().SendEmail(gomock.Any(), "u1", "Interview", "Tomorrow 10:00").Return(false)
	f.contacts.EXPECT().GetContact(gomock.Any(), "u1").Return(model.Contact{UserID: "u1", Phone: "9876543210"}, nil)
	f.whatsapp.EXPECT().
		Send(gomock.Any(), "9876543210", "*Interview*\n\nTomorrow 10:00\n\nhttps://hire.example.com/i/1", "").
		Return(model.DeliveryResult{Success: true, MessageID: "wamid-1"})
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id, model.SentStatus{Dashboard: true, WhatsApp: true}).Return(nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Interview",
		Message:  "Tomorrow 10:00",
		Link:     "https://hire.example.com/i/1",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail, model.ChannelWhatsApp},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SentStatus{Dashboard: true, Email: false, WhatsApp: true}, n.SentStatus)
}

func TestService_Notify_ChannelsRunConcurrently(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	emailStarted := make(chan struct{})
	waStarted := make(chan struct{})

	f.tracker.EXPECT().IsReady().Return(true)
	f.expectCreate(id, nil)
	// each send only succeeds while the other one is in flight
	f.email.EXPECT().SendEmail(gomock.Any(), "u1", "Interview", "Tomorrow 10:00").DoAndReturn(
		func(context.Context, string, string, string) bool {
			close(emailStarted)
			select {
			case <-waStarted:
				return true
			case <-time.After(2 * time.Second):
				return false
			}
		},
	)
	f.contacts.EXPECT().GetContact(gomock.Any(), "u1").Return(model.Contact{UserID: "u1", Phone: "9876543210"}, nil)
	f.whatsapp.EXPECT().Send(gomock.Any(), "9876543210", gomock.Any(), "").DoAndReturn(
		func(context.Context, string, string, string) model.DeliveryResult {
			close(waStarted)
			select {
			case <-emailStarted:
				return model.DeliveryResult{Success: true, MessageID: "wamid-1"}
			case <-time.After(2 * time.Second):
				return model.DeliveryResult{Error: "timeout"}
			}
		},
	)
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id, model.SentStatus{Dashboard: true, Email: true, WhatsApp: true}).Return(nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Interview",
		Message:  "Tomorrow 10:00",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail, model.ChannelWhatsApp},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SentStatus{Dashboard: true, Email: true, WhatsApp: true}, n.SentStatus)
}

func TestService_Notify_WhatsAppSendFails(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.tracker.EXPECT().IsReady().Return(true)
	f.expectCreate(id, nil)
	f.contacts.EXPECT().GetContact(gomock.Any(), "u1").Return(model.Contact{UserID: "u1", Phone: "9876543210"}, nil)
	f.whatsapp.EXPECT().Send(gomock.Any(), "9876543210", gomock.Any(), "").
		Return(model.DeliveryResult{Error: "whatsapp client is not ready"})
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id, model.SentStatus{}).Return(nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Job",
		Message:  "New match",
		Channels: []model.Channel{model.ChannelWhatsApp},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Channel{model.ChannelWhatsApp}, n.Channels)
	assert.Equal(t, model.SentStatus{}, n.SentStatus)
}

func TestService_Notify_DashboardOnlySkipsUpdate(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.tracker.EXPECT().IsReady().Return(true)
	f.expectCreate(id, nil)
	f.expectCache(id)

	n, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Title:    "Hi",
		Message:  "Welcome",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelDashboard},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Channel{model.ChannelDashboard}, n.Channels)
	assert.True(t, n.SentStatus.Dashboard)
}

func TestService_Notify_PersistenceFailure(t *testing.T) {
	f := setup(t)
	dbErr := errors.New("db down")

	f.tracker.EXPECT().IsReady().Return(true)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.Nil, dbErr)

	_, err := f.svc.Notify(context.Background(), model.NotifyRequest{
		UserID:   "u1",
		Channels: []model.Channel{model.ChannelEmail, model.ChannelWhatsApp},
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestService_NotifyBulk(t *testing.T) {
	f := setup(t)
	id1, id3 := uuid.New(), uuid.New()
	dbErr := errors.New("db down")

	// availability is decided once for the whole batch
	f.tracker.EXPECT().IsReady().Return(false).Times(1)

	gomock.InOrder(
		f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(id1, nil),
		f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.Nil, dbErr),
		f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(id3, nil),
	)
	f.email.EXPECT().SendEmail(gomock.Any(), "u1", "Sale", "50% off").Return(true)
	f.email.EXPECT().SendEmail(gomock.Any(), "u3", "Sale", "50% off").Return(false)
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id1, model.SentStatus{Dashboard: true, Email: true}).Return(nil)
	f.repo.EXPECT().UpdateSentStatus(gomock.Any(), id3, model.SentStatus{Dashboard: true}).Return(nil)
	f.expectCache(id1)
	f.expectCache(id3)

	records, err := f.svc.NotifyBulk(context.Background(), []string{"u1", "u2", "u3"}, model.NotifyRequest{
		Title:    "Sale",
		Message:  "50% off",
		Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail, model.ChannelWhatsApp},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "user u2")

	require.Len(t, records, 2)
	assert.Equal(t, "u1", records[0].UserID)
	assert.Equal(t, "u3", records[1].UserID)
	assert.Equal(t, []model.Channel{model.ChannelDashboard, model.ChannelEmail}, records[1].Channels)
}

func TestService_GetDeliveryStatus_CacheHit(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.cache.EXPECT().GetWithRetry(gomock.Any(), f.strategy, statusKey(id)).
		Return(`{"dashboard":true,"email":false,"whatsapp":true}`, nil)

	status, err := f.svc.GetDeliveryStatus(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.SentStatus{Dashboard: true, WhatsApp: true}, status)
}

func TestService_GetDeliveryStatus_CacheMiss(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.cache.EXPECT().GetWithRetry(gomock.Any(), f.strategy, statusKey(id)).Return("", redis.Nil)
	f.repo.EXPECT().GetSentStatusByID(gomock.Any(), id).Return(model.SentStatus{Dashboard: true, Email: true}, nil)
	f.cache.EXPECT().
		SetWithRetry(gomock.Any(), f.strategy, statusKey(id), `{"dashboard":true,"email":true,"whatsapp":false}`).
		Return(nil)

	status, err := f.svc.GetDeliveryStatus(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.SentStatus{Dashboard: true, Email: true}, status)
}

func TestService_GetDeliveryStatus_CacheErrorFallsBack(t *testing.T) {
	f := setup(t)
	id := uuid.New()
	notFound := errors.New("notification not found")

	f.cache.EXPECT().GetWithRetry(gomock.Any(), f.strategy, statusKey(id)).Return("", errors.New("redis down"))
	f.repo.EXPECT().GetSentStatusByID(gomock.Any(), id).Return(model.SentStatus{}, notFound)

	_, err := f.svc.GetDeliveryStatus(context.Background(), id)
	assert.ErrorIs(t, err, notFound)
}

func TestService_PruneExpired(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().DeleteExpired(gomock.Any(), f.clock.Now()).Return(int64(3), nil)

	n, err := f.svc.PruneExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestService_ListMarkDelete(t *testing.T) {
	f := setup(t)
	id := uuid.New()

	f.repo.EXPECT().ListByUser(gomock.Any(), "u1", true).Return([]model.Notification{{ID: id}}, nil)
	f.repo.EXPECT().MarkAsRead(gomock.Any(), id, "u1").Return(nil)
	f.repo.EXPECT().Delete(gomock.Any(), id).Return(errors.New("boom"))

	list, err := f.svc.ListForUser(context.Background(), "u1", true)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, f.svc.MarkAsRead(context.Background(), id, "u1"))
	assert.Error(t, f.svc.Delete(context.Background(), id))
}
