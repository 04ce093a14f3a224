package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"med-booking-api/internal/service"
	resp "med-booking-api/internal/transport/http/response"
)

type BookingHandler struct {
	booking *service.BookingService
	lc      *service.Lifecycle
}

func NewBookingHandler(booking *service.BookingService, lc *service.Lifecycle) *BookingHandler {
	return &BookingHandler{booking: booking, lc: lc}
}

type bookIn struct {
	Email    string    `json:"email" binding:"required,email"`
	Username string    `json:"username" binding:"required,max=64"`
	PhotoURL string    `json:"photoUrl" binding:"required,url"`
	Date     time.Time `json:"date" binding:"required"` // RFC3339
}

// Book POST /appointments/book；用户不存在时顺带建档
func (h *BookingHandler) Book(c *gin.Context) {
	var in bookIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}

	a, err := h.booking.Book(c.Request.Context(), in.Email, in.Username, in.PhotoURL, in.Date)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(a))
}

// Cancel DELETE /appointments/:id；重复取消会命中 404
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Cancel(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": id}))
}

// List GET /appointments/user/:email
func (h *BookingHandler) List(c *gin.Context) {
	appts, err := h.booking.ListForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"appointments": appts}))
}

// Sweep PATCH /appointments/refresh-status；返回翻转行数
func (h *BookingHandler) Sweep(c *gin.Context) {
	n, err := h.lc.Sweep(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"updated": n}))
}
