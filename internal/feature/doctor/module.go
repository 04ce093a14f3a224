package doctor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"med-booking-api/internal/core/cache"
	"med-booking-api/internal/domain"
	resp "med-booking-api/internal/transport/http/response"
)

// Module 实现 router.APIModule，经注册器挂到 /api/v1 下
type Module struct {
	repo  *Repo
	cache *cache.Cache // 可为 nil
	ttl   time.Duration
}

func NewModule(repo *Repo, c *cache.Cache) *Module {
	return &Module{repo: repo, cache: c, ttl: 5 * time.Minute}
}

func (m *Module) Priority() int { return 50 }

func (m *Module) MountAPI(api *gin.RouterGroup) {
	api.GET("/doctors", m.list)
	api.GET("/doctors/:id", m.get)
}

func (m *Module) list(c *gin.Context) {
	specialty := c.Query("specialty")
	sort := c.DefaultQuery("sort", "recommended")

	load := func(ctx context.Context) (*[]Doctor, error) {
		ds, err := m.repo.List(ctx, specialty, sort)
		return &ds, err
	}

	var (
		ds  *[]Doctor
		err error
	)
	if m.cache != nil {
		key := fmt.Sprintf("doctors:%s:%s", specialty, sort)
		ds, err = cache.GetOrLoadJSON[[]Doctor](m.cache, c.Request.Context(), key, m.ttl, load)
	} else {
		ds, err = load(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"doctors": ds}))
}

func (m *Module) get(c *gin.Context) {
	d, err := m.repo.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrDoctorNotFound) {
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "doctor not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(d))
}
