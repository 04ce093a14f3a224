package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"med-booking-api/internal/domain"
	"med-booking-api/pkg/utils"
)

type AppointmentRepo struct{ db *gorm.DB }

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

var _ domain.AppointmentRepository = (*AppointmentRepo)(nil)

func (r *AppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	if a.ID == "" {
		a.ID = utils.NewID()
	}
	if a.Status == "" {
		a.Status = domain.StatusAvailable
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &a, nil
}

// ListByUser 带 owner 快照一起返回，date 升序
func (r *AppointmentRepo) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Appointment{})
	if res.Error != nil {
		return fmt.Errorf("delete appointment: %w", res.Error)
	}
	// 并发双删：后到的一方删不到行，统一按不存在上报
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// ExpireDue 谓词在同一条 UPDATE 里逐行判定，不存在半更新状态；
// 跑第二遍时 status=available 的条件已经筛掉翻转过的行，天然幂等
func (r *AppointmentRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("status = ? AND date < ?", domain.StatusAvailable, now).
		Update("status", domain.StatusUnavailable)
	if res.Error != nil {
		return 0, fmt.Errorf("expire appointments: %w", res.Error)
	}
	return res.RowsAffected, nil
}
