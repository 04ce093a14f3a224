package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"med-booking-api/internal/core/auth"
	"med-booking-api/internal/transport/http/handler"
	mdw "med-booking-api/internal/transport/http/middleware"
)

// NewAPIEngine 面向 web 端的公开接口；路由面保持和前端约定一致
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, authH *handler.AuthHandler, bookH *handler.BookingHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true), // 公开面带栈回溯
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公开接口（IdP 回调本身即鉴权，book/list/cancel 沿用原行为不挂 token）
	api.POST("/auth/login", authH.Login)
	api.POST("/appointments/book", bookH.Book)
	api.DELETE("/appointments/:id", bookH.Cancel)
	api.GET("/appointments/user/:email", bookH.List)
	api.PATCH("/appointments/refresh-status", bookH.Sweep)

	// 鉴权分组（/me 要从 token 里拿 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	authed.GET("/me", authH.Me)

	// 注册器挂载的模块（医生名录等）
	MountAllAPI(api)

	return r
}
