package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const scheduledWarmTimeout = 5 * time.Minute

// WarmSchedule re-queues the featured products on a cron expression.
type WarmSchedule struct {
	cron *cron.Cron
	log  *zap.Logger
}

// NewWarmSchedule accepts standard five-field expressions and descriptors
// such as "@hourly" or "@every 30m".
func NewWarmSchedule(w Warmer, expr string, log *zap.Logger) (*WarmSchedule, error) {
	c := cron.New()
	_, err := c.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledWarmTimeout)
		defer cancel()

		queued, err := w.Submit(ctx, nil)
		if err != nil {
			log.Warn("Scheduled cache warm failed", zap.String("schedule", expr), zap.Error(err))
			return
		}
		log.Info("Scheduled cache warm queued", zap.Int("queued", queued))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid warm schedule %q: %w", expr, err)
	}
	return &WarmSchedule{cron: c, log: log}, nil
}

func (s *WarmSchedule) Start() {
	s.cron.Start()
	s.log.Info("Cache warm schedule started")
}

// Stop waits for a running job to finish.
func (s *WarmSchedule) Stop() {
	<-s.cron.Stop().Done()
}
