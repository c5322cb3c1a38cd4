package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/hire-notifier/internal/mocks/worker"
	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
)

func TestEventWorkers_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockeventConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	w := NewEventWorkers(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.EventMessage{ID: uuid.New(), Type: "job_match", UserID: "u1"}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.EventMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	handled := make(chan struct{})
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy).Do(
		func(context.Context, queue.EventMessage, retry.Strategy) { close(handled) },
	)

	stopped := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 2)
		close(stopped)
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestEventWorkers_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockeventConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	w := NewEventWorkers(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, _ chan<- queue.EventMessage, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	)

	stopped := make(chan struct{})
	go func() {
		w.Run(ctx, strategy, 0)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}
