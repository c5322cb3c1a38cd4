package worker

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=pruner.go -destination=../mocks/worker/pruner_mock.go -package=mocks

type expiredPruner interface {
	PruneExpired(ctx context.Context) (int64, error)
}

// Pruner periodically deletes notifications past their expiry.
type Pruner struct {
	service  expiredPruner
	clock    clockwork.Clock
	interval time.Duration
}

func NewPruner(s expiredPruner, clock clockwork.Clock, interval time.Duration) *Pruner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Pruner{service: s, clock: clock, interval: interval}
}

// Run prunes once immediately and then on every tick until ctx is done.
func (p *Pruner) Run(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.prune(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.prune(ctx)
		}
	}
}

func (p *Pruner) prune(ctx context.Context) {
	n, err := p.service.PruneExpired(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to prune expired notifications")
		return
	}
	if n > 0 {
		zlog.Logger.Info().Int64("removed", n).Msg("pruned expired notifications")
	}
}
