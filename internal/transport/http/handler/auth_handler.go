package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"med-booking-api/internal/core/auth"
	"med-booking-api/internal/service"
	resp "med-booking-api/internal/transport/http/response"
)

// AuthHandler 登录回调入口：IdP 已经验证过身份，这里只做 upsert + 发会话 token
type AuthHandler struct {
	dir   *service.UserDirectory
	jwter *auth.JWTer
}

func NewAuthHandler(dir *service.UserDirectory, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{dir: dir, jwter: jwter}
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,max=64"`
	PhotoURL string `json:"photoUrl" binding:"required,url"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}

	u, err := h.dir.Resolve(c.Request.Context(), in.Email, in.Username, in.PhotoURL)
	if err != nil {
		writeErr(c, err)
		return
	}

	tok, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"token": tok, "user": u}))
}

// Me GET /me（走 AuthJWT 分组）
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString("userId")
	if uid == "" {
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
		return
	}
	u, err := h.dir.ByID(c.Request.Context(), uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}
