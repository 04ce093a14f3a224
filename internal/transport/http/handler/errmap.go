package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"med-booking-api/internal/domain"
	resp "med-booking-api/internal/transport/http/response"
)

// writeErr 三类错误映射到统一信封：校验 400 / 不存在 404 / 其余按存储层失败 500
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrDoctorNotFound):
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, err.Error()))
	default:
		// 细节进日志（AccessLog 带 rid），对外只报通用失败
		_ = c.Error(err)
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
	}
}
