package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"med-booking-api/internal/core/auth"
	"med-booking-api/internal/domain"
	"med-booking-api/internal/service"
	mdw "med-booking-api/internal/transport/http/middleware"
)

// NewAdminEngine 后台端：用户名录 + 手动 sweep，统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, users domain.UserRepository, jwter *auth.JWTer, lc *service.Lifecycle) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	MountAllAdmin(admin)
	MountAdminActions(admin, db, users, lc)

	return r
}
