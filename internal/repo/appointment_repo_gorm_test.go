package repo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"med-booking-api/internal/domain"
	"med-booking-api/internal/repo"
)

func seedUser(t *testing.T, users *repo.UserRepo, email string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, Username: "u", PhotoURL: "https://img/u.png"}
	require.NoError(t, users.Upsert(ctx(), u))
	return u
}

func TestAppointmentCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	users, appts := repo.NewUserRepo(db), repo.NewAppointmentRepo(db)
	u := seedUser(t, users, "a@x.com")

	a := &domain.Appointment{UserID: u.ID, Date: time.Now().Add(24 * time.Hour)}
	require.NoError(t, appts.Create(ctx(), a))

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.StatusAvailable, a.Status)
}

func TestAppointmentListIsolationAndOrder(t *testing.T) {
	db := newTestDB(t)
	users, appts := repo.NewUserRepo(db), repo.NewAppointmentRepo(db)
	ua := seedUser(t, users, "a@x.com")
	ub := seedUser(t, users, "b@x.com")

	later := time.Now().Add(48 * time.Hour)
	sooner := time.Now().Add(24 * time.Hour)
	require.NoError(t, appts.Create(ctx(), &domain.Appointment{UserID: ua.ID, Date: later}))
	require.NoError(t, appts.Create(ctx(), &domain.Appointment{UserID: ua.ID, Date: sooner}))
	require.NoError(t, appts.Create(ctx(), &domain.Appointment{UserID: ub.ID, Date: sooner}))

	got, err := appts.ListByUser(ctx(), ua.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// date 升序
	assert.True(t, got[0].Date.Before(got[1].Date))
	for _, a := range got {
		assert.Equal(t, ua.ID, a.UserID)
	}
}

func TestAppointmentDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	users, appts := repo.NewUserRepo(db), repo.NewAppointmentRepo(db)
	u := seedUser(t, users, "a@x.com")

	a := &domain.Appointment{UserID: u.ID, Date: time.Now().Add(time.Hour)}
	require.NoError(t, appts.Create(ctx(), a))

	require.NoError(t, appts.Delete(ctx(), a.ID))
	// 第二次删同一条：行已不在
	err := appts.Delete(ctx(), a.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestExpireDue(t *testing.T) {
	db := newTestDB(t)
	users, appts := repo.NewUserRepo(db), repo.NewAppointmentRepo(db)
	u := seedUser(t, users, "a@x.com")

	past := &domain.Appointment{UserID: u.ID, Date: time.Now().Add(-time.Hour)}
	future := &domain.Appointment{UserID: u.ID, Date: time.Now().Add(time.Hour)}
	require.NoError(t, appts.Create(ctx(), past))
	require.NoError(t, appts.Create(ctx(), future))

	n, err := appts.ExpireDue(ctx(), time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := appts.FindByID(ctx(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, got.Status)

	// 未来的预约不动
	got, err = appts.FindByID(ctx(), future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, got.Status)

	// 幂等：第二遍没有新行可翻
	n, err = appts.ExpireDue(ctx(), time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
