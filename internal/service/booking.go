package service

import (
	"context"
	"fmt"
	"time"

	"med-booking-api/internal/domain"
)

// BookingService 预约的边界操作：book / cancel / list。
// 用户在 book 里顺带 get-or-create（同 login 的 upsert 语义）。
type BookingService struct {
	users *UserDirectory
	appts domain.AppointmentRepository
}

func NewBookingService(users *UserDirectory, appts domain.AppointmentRepository) *BookingService {
	return &BookingService{users: users, appts: appts}
}

func (s *BookingService) Book(ctx context.Context, email, username, photoURL string, date time.Time) (*domain.Appointment, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	u, err := s.users.Resolve(ctx, email, username, photoURL)
	if err != nil {
		return nil, err
	}

	a := &domain.Appointment{
		UserID: u.ID,
		Date:   date,
		Status: domain.StatusAvailable,
	}
	if err := s.appts.Create(ctx, a); err != nil {
		return nil, err
	}
	apptBooked.Inc()
	return a, nil
}

// Cancel 硬删，不留痕（沿用原行为；审计需求见 DESIGN.md）
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: appointment id is required", domain.ErrInvalidInput)
	}
	if err := s.appts.Delete(ctx, id); err != nil {
		return err
	}
	apptCancelled.Inc()
	return nil
}

// ListForUser 用户必须已存在；返回按 date 升序
func (s *BookingService) ListForUser(ctx context.Context, email string) ([]domain.Appointment, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.appts.ListByUser(ctx, u.ID)
}
