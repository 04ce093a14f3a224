package domain

import (
	"context"
	"time"
)

type AppointmentStatus string

const (
	// StatusAvailable 已预约、未到期
	StatusAvailable AppointmentStatus = "available"
	// StatusUnavailable 预约时间已过（由 sweep 批量翻转，单向）
	StatusUnavailable AppointmentStatus = "unavailable"
)

// Appointment 一条预约记录：归属一个用户 + 就诊时间 + 生命周期状态。
// (status, date) 联合索引服务于 sweep 的过滤条件。
type Appointment struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	UserID    string            `gorm:"size:36;not null;index:idx_appt_user" json:"userId"`
	Date      time.Time         `gorm:"not null;index:idx_appt_status_date,priority:2" json:"date"`
	Status    AppointmentStatus `gorm:"size:16;not null;default:available;index:idx_appt_status_date,priority:1" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Appointment) TableName() string { return "appointments" }

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	FindByID(ctx context.Context, id string) (*Appointment, error)
	// ListByUser 按 date 升序返回（原行为不排序，这里固定顺序）
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	// Delete 硬删；没删到行返回 ErrAppointmentNotFound
	Delete(ctx context.Context, id string) error
	// ExpireDue 单条 UPDATE 把 status=available 且 date<now 的行翻成 unavailable，返回行数
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
