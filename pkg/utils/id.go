package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 去掉连字符的 uuid，存 varchar(32/36) 都够用
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
