package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/hire-notifier/internal/mocks/rabbitmq/handlers/event"
	"github.com/aliskhannn/hire-notifier/internal/model"
	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/hire-notifier/internal/service/trigger"
)

func newMessage() queue.EventMessage {
	return queue.EventMessage{
		ID:         uuid.New(),
		Type:       trigger.EventJobMatch,
		UserID:     "u1",
		Data:       json.RawMessage(`{"job_id":"j1","job_title":"Go Developer"}`),
		OccurredAt: time.Now(),
	}
}

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockeventDispatcher(ctrl)
	observer := mocks.NewMockeventObserver(ctrl)
	h := NewHandler(dispatcher, observer)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), msg.Type, msg.UserID, msg.Data).
		Return(model.Notification{ID: uuid.New()}, nil)
	observer.EXPECT().ObserveEvent(msg.Type, "handled")

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesTransientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockeventDispatcher(ctrl)
	observer := mocks.NewMockeventObserver(ctrl)
	h := NewHandler(dispatcher, observer)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond}

	gomock.InOrder(
		dispatcher.EXPECT().
			Dispatch(gomock.Any(), msg.Type, msg.UserID, msg.Data).
			Return(model.Notification{}, errors.New("db down")),
		dispatcher.EXPECT().
			Dispatch(gomock.Any(), msg.Type, msg.UserID, msg.Data).
			Return(model.Notification{ID: uuid.New()}, nil),
	)
	observer.EXPECT().ObserveEvent(msg.Type, "handled")

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockeventDispatcher(ctrl)
	observer := mocks.NewMockeventObserver(ctrl)
	h := NewHandler(dispatcher, observer)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), msg.Type, msg.UserID, msg.Data).
		Return(model.Notification{}, errors.New("db down"))
	observer.EXPECT().ObserveEvent(msg.Type, "failed")

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RejectedIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockeventDispatcher(ctrl)
	observer := mocks.NewMockeventObserver(ctrl)
	h := NewHandler(dispatcher, observer)

	msg := newMessage()
	msg.Type = "job_deleted"
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond}

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), msg.Type, msg.UserID, msg.Data).
		Return(model.Notification{}, fmt.Errorf("%w: %q", trigger.ErrUnknownEvent, msg.Type)).
		Times(1)
	observer.EXPECT().ObserveEvent(msg.Type, "rejected")

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockeventDispatcher(ctrl)
	h := NewHandler(dispatcher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Dispatch is never called once the context is gone.
	h.HandleMessage(ctx, newMessage(), retry.Strategy{Attempts: 1, Delay: time.Millisecond})
}
