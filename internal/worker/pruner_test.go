package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"

	mocks "github.com/aliskhannn/hire-notifier/internal/mocks/worker"
)

func TestPruner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockexpiredPruner(ctrl)
	clock := clockwork.NewFakeClock()
	p := NewPruner(svc, clock, time.Hour)

	calls := make(chan struct{}, 4)
	gomock.InOrder(
		svc.EXPECT().PruneExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			calls <- struct{}{}
			return 2, nil
		}),
		svc.EXPECT().PruneExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			calls <- struct{}{}
			return 0, errors.New("db down")
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(stopped)
	}()

	wait := func() {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("prune was not called")
		}
	}

	// immediate run
	wait()

	clock.Advance(time.Hour)
	wait()

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("pruner did not stop")
	}
}
