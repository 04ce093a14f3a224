package doctor_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"med-booking-api/internal/domain"
	"med-booking-api/internal/feature/doctor"
)

func newRepo(t *testing.T) *doctor.Repo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&doctor.Doctor{}))
	require.NoError(t, doctor.Seed(db))
	return doctor.NewRepo(db)
}

func TestListFilterBySpecialty(t *testing.T) {
	r := newRepo(t)

	ds, err := r.List(context.Background(), "Cardiology", "recommended")
	require.NoError(t, err)
	require.NotEmpty(t, ds)
	for _, d := range ds {
		assert.Equal(t, "Cardiology", d.Specialty)
	}

	// "All Specialties" 等同不过滤
	all, err := r.List(context.Background(), "All Specialties", "recommended")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(ds))
}

func TestListSortByName(t *testing.T) {
	r := newRepo(t)

	ds, err := r.List(context.Background(), "", "name-asc")
	require.NoError(t, err)
	require.Greater(t, len(ds), 1)
	for i := 1; i < len(ds); i++ {
		assert.LessOrEqual(t, ds[i-1].Name, ds[i].Name)
	}
}

func TestListSortByRating(t *testing.T) {
	r := newRepo(t)

	ds, err := r.List(context.Background(), "", "rating")
	require.NoError(t, err)
	require.Greater(t, len(ds), 1)
	for i := 1; i < len(ds); i++ {
		assert.GreaterOrEqual(t, ds[i-1].Rating, ds[i].Rating)
	}
}

func TestFindByID(t *testing.T) {
	r := newRepo(t)

	d, err := r.FindByID(context.Background(), "dr-1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", d.Name)

	_, err = r.FindByID(context.Background(), "dr-none")
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}
