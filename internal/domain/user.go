package domain

import (
	"context"
	"time"
)

// User 由外部身份源（登录回调）同步进来，email 是天然主键
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Username  string    `gorm:"size:64;not null" json:"username"`
	PhotoURL  string    `gorm:"size:512;not null" json:"photoUrl"`
	Role      string    `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	// Upsert 以 email 为冲突键的原子 insert-or-update（勿用先查后写，会把竞态带回来）
	Upsert(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, q string, offset, limit int) ([]User, int64, error)
}

// 角色取值
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
