package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"med-booking-api/internal/core/cache"
	"med-booking-api/internal/domain"
)

// UserDirectory 把外部 IdP 的登录声明（email/username/photoUrl）落成用户行。
// 每次声明都按最新事实覆盖 username/photo。
type UserDirectory struct {
	users  domain.UserRepository
	cache  *cache.Cache // 可为 nil（本地/测试不起 redis）
	ttl    time.Duration
	admins map[string]struct{} // 配置里的后台账号 email
}

func NewUserDirectory(users domain.UserRepository, c *cache.Cache, ttl time.Duration, adminEmails []string) *UserDirectory {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &UserDirectory{users: users, cache: c, ttl: ttl, admins: admins}
}

func userKey(email string) string { return "user:email:" + email }

// Resolve 幂等 upsert：同样的输入重复调用只有一行、一个状态
func (d *UserDirectory) Resolve(ctx context.Context, email, username, photoURL string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || photoURL == "" {
		return nil, fmt.Errorf("%w: email, username and photoUrl are required", domain.ErrInvalidInput)
	}

	// 角色由配置决定，每次登录重算，撤销管理员后下次登录即降级
	role := domain.RoleUser
	if _, ok := d.admins[strings.ToLower(email)]; ok {
		role = domain.RoleAdmin
	}

	u := &domain.User{Email: email, Username: username, PhotoURL: photoURL, Role: role}
	if err := d.users.Upsert(ctx, u); err != nil {
		return nil, err
	}
	if d.cache != nil {
		// 写后失效，下一次 ByEmail 回源拿新快照
		d.cache.Invalidate(ctx, userKey(email))
	}
	return u, nil
}

// ByEmail 读路径，带 redis + singleflight；查不到返回 ErrUserNotFound
func (d *UserDirectory) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	var (
		u   *domain.User
		err error
	)
	if d.cache != nil {
		u, err = cache.GetOrLoadJSON[domain.User](d.cache, ctx, userKey(email), d.ttl, func(ctx context.Context) (*domain.User, error) {
			return d.users.FindByEmail(ctx, email)
		})
	} else {
		u, err = d.users.FindByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (d *UserDirectory) ByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := d.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}
