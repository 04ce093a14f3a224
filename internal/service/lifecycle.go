package service

import (
	"context"
	"time"

	"med-booking-api/internal/domain"
)

// Lifecycle 状态机只有一条边：available -> unavailable。
// Sweep 负责批量翻转到期的预约，什么时候跑由外部（API 或 cron）决定。
type Lifecycle struct {
	appts domain.AppointmentRepository
}

func NewLifecycle(appts domain.AppointmentRepository) *Lifecycle {
	return &Lifecycle{appts: appts}
}

func (l *Lifecycle) Sweep(ctx context.Context) (int64, error) {
	n, err := l.appts.ExpireDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	apptExpired.Add(float64(n))
	return n, nil
}
