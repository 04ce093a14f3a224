package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"med-booking-api/internal/service"
)

// Sweeper 进程内定时触发 Sweep；spec 为空时不启动，
// 仍可通过 PATCH /appointments/refresh-status 手动触发
type Sweeper struct {
	lc  *service.Lifecycle
	log *zap.Logger
}

func NewSweeper(lc *service.Lifecycle, log *zap.Logger) *Sweeper {
	return &Sweeper{lc: lc, log: log}
}

func (s *Sweeper) Start(spec string) (*cron.Cron, error) {
	c := cron.New() // 分钟粒度足够
	_, err := c.AddFunc(spec, s.runOnce)
	if err != nil {
		return nil, err
	}
	c.Start()
	s.log.Info("sweep scheduler started", zap.String("cron", spec))
	return c, nil
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.lc.Sweep(ctx)
	if err != nil {
		s.log.Error("sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("sweep done", zap.Int64("expired", n))
	}
}
