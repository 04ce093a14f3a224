package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"med-booking-api/internal/domain"
	"med-booking-api/internal/repo"
	"med-booking-api/internal/service"
)

type fixture struct {
	db      *gorm.DB
	dir     *service.UserDirectory
	booking *service.BookingService
	lc      *service.Lifecycle
	appts   domain.AppointmentRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Appointment{}))

	appts := repo.NewAppointmentRepo(db)
	dir := service.NewUserDirectory(repo.NewUserRepo(db), nil, 0, nil) // 测试不挂 redis
	return &fixture{
		db:      db,
		dir:     dir,
		booking: service.NewBookingService(dir, appts),
		lc:      service.NewLifecycle(appts),
		appts:   appts,
	}
}

func ctx() context.Context { return context.Background() }

func TestResolveValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.dir.Resolve(ctx(), "", "alice", "https://img/a.png")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.dir.Resolve(ctx(), "a@x.com", "", "https://img/a.png")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.dir.Resolve(ctx(), "a@x.com", "alice", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// 配置名单里的 email 登录拿 admin 角色，名单外一律 user；
// 从名单撤下后下次登录降级
func TestResolveAssignsRoleFromConfig(t *testing.T) {
	f := newFixture(t)
	adminDir := service.NewUserDirectory(repo.NewUserRepo(f.db), nil, 0, []string{"Root@X.com"})

	u, err := adminDir.Resolve(ctx(), "root@x.com", "root", "https://img/r.png")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	u, err = adminDir.Resolve(ctx(), "plain@x.com", "plain", "https://img/p.png")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)

	// 同一个库换成空名单，再登录即降级
	u, err = f.dir.Resolve(ctx(), "root@x.com", "root", "https://img/r.png")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)
}

func TestBookCreatesUserOnTheFly(t *testing.T) {
	f := newFixture(t)

	a, err := f.booking.Book(ctx(), "new@x.com", "newbie", "https://img/n.png", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, a.Status)

	// 用户被顺带建出来，预约归属到它
	u, err := f.dir.ByEmail(ctx(), "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, a.UserID)
}

func TestBookValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.booking.Book(ctx(), "a@x.com", "alice", "https://img/a.png", time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.booking.Book(ctx(), "", "alice", "https://img/a.png", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelIsFinal(t *testing.T) {
	f := newFixture(t)

	a, err := f.booking.Book(ctx(), "a@x.com", "alice", "https://img/a.png", time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, f.booking.Cancel(ctx(), a.ID))
	err = f.booking.Cancel(ctx(), a.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestListForUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.booking.ListForUser(ctx(), "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListIsolation(t *testing.T) {
	f := newFixture(t)

	_, err := f.booking.Book(ctx(), "a@x.com", "alice", "https://img/a.png", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = f.booking.Book(ctx(), "b@x.com", "bob", "https://img/b.png", time.Now().Add(time.Hour))
	require.NoError(t, err)

	got, err := f.booking.ListForUser(ctx(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSweepMonotone(t *testing.T) {
	f := newFixture(t)

	_, err := f.booking.Book(ctx(), "a@x.com", "alice", "https://img/a.png", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = f.booking.Book(ctx(), "a@x.com", "alice", "https://img/a.png", time.Now().Add(time.Hour))
	require.NoError(t, err)

	n, err := f.lc.Sweep(ctx())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// 立刻再跑一遍：0 条新翻转
	n, err = f.lc.Sweep(ctx())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

// 完整场景：登录 → 预约 → 到期翻转 → 取消
func TestEndToEndScenario(t *testing.T) {
	f := newFixture(t)

	u, err := f.dir.Resolve(ctx(), "alice@x.com", "alice", "https://img/a.png")
	require.NoError(t, err)

	a, err := f.booking.Book(ctx(), "alice@x.com", "alice", "https://img/a.png", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, u.ID, a.UserID)

	got, err := f.booking.ListForUser(ctx(), "alice@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusAvailable, got[0].Status)

	n, err := f.lc.Sweep(ctx())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = f.booking.ListForUser(ctx(), "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, got[0].Status)

	require.NoError(t, f.booking.Cancel(ctx(), a.ID))
	got, err = f.booking.ListForUser(ctx(), "alice@x.com")
	require.NoError(t, err)
	assert.Len(t, got, 0)
}
