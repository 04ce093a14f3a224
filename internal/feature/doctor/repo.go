package doctor

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"med-booking-api/internal/domain"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// List specialty 为空或 "All Specialties" 表示不过滤；
// sort 取 web 端下拉框的枚举值
func (r *Repo) List(ctx context.Context, specialty, sort string) ([]Doctor, error) {
	q := r.db.WithContext(ctx).Model(&Doctor{})
	if specialty != "" && specialty != "All Specialties" {
		q = q.Where("specialty = ?", specialty)
	}
	switch sort {
	case "rating":
		q = q.Order("rating desc")
	case "name-asc":
		q = q.Order("name asc")
	case "name-desc":
		q = q.Order("name desc")
	default: // recommended
		q = q.Order("featured desc").Order("rating desc")
	}

	var out []Doctor
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return out, nil
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Doctor, error) {
	var d Doctor
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &d, nil
}
