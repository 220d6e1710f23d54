package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	warmPollInterval = 2 * time.Second
	warmTaskTimeout  = 2 * time.Minute
)

// WarmerPool drains the warm queue on a fixed number of goroutines.
type WarmerPool struct {
	warmer  Warmer
	workers int
	poll    time.Duration
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewWarmerPool(w Warmer, workers int, log *zap.Logger) *WarmerPool {
	if workers < 1 {
		workers = 1
	}
	return &WarmerPool{
		warmer:  w,
		workers: workers,
		poll:    warmPollInterval,
		log:     log,
	}
}

func (p *WarmerPool) Start() {
	p.ctx, p.cancel = context.WithCancel(context.Background())
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	p.log.Info("Cache warmer started", zap.Int("workers", p.workers))
}

// Stop cancels in-flight warms and waits for the workers to exit.
func (p *WarmerPool) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
}

func (p *WarmerPool) worker() {
	defer p.wg.Done()
	for {
		ctx, cancel := context.WithTimeout(p.ctx, warmTaskTimeout)
		worked, err := p.warmer.ProcessNext(ctx)
		cancel()
		if err != nil && p.ctx.Err() == nil {
			p.log.Error("Cache warm worker failed", zap.Error(err))
		}
		if worked && err == nil {
			continue
		}

		select {
		case <-p.ctx.Done():
			return
		case <-time.After(p.poll):
		}
	}
}
