package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=events.go -destination=../mocks/worker/events_mock.go -package=mocks

type eventConsumer interface {
	Consume(ctx context.Context, out chan<- queue.EventMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.EventMessage, strategy retry.Strategy)
}

// EventWorkers consumes portal events and hands each one to the handler.
type EventWorkers struct {
	queue   eventConsumer
	handler messageHandler
}

func NewEventWorkers(q eventConsumer, h messageHandler) *EventWorkers {
	return &EventWorkers{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (w *EventWorkers) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.EventMessage, workerCount*10)

	go func() {
		if err := w.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("event worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("event worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						return
					}

					w.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("event workers stopped")
}
