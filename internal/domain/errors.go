package domain

import "errors"

// 三类边界可见错误：校验 / 不存在 / 存储层失败。
// 存储层失败不单列哨兵，由 repo 带上下文 wrap 后上抛。
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
)
