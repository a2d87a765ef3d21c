package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRoomRequest struct {
	GuestEmail    string `json:"email" binding:"required"`
	RoomType      string `json:"room" binding:"required"`
	CheckIn       string `json:"checkIn" binding:"required"`
	CheckOut      string `json:"checkOut" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type updateBookingRequest struct {
	RoomID        int64  `json:"room_id" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type bookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	RoomID        int64   `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	TotalPrice    float64 `json:"total_price"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		RoomID:        b.RoomID,
		CheckIn:       formatDate(b.CheckIn),
		CheckOut:      formatDate(b.CheckOut),
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		TotalPrice:    b.TotalPrice,
	}
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book-room", h.book)
	router.GET("/bookings/:id", h.get)
	router.PUT("/bookings/:id", h.update)
	router.POST("/bookings/:id/cancel", h.cancel)
	router.POST("/bookings/:id/checkin", h.checkIn)
	router.POST("/bookings/:id/checkout", h.checkOut)
	router.GET("/bookings", h.listForUser)
	router.GET("/allconfirmedbookings", h.confirmed)
	router.GET("/booking-history", h.history)
	router.GET("/bookings-report", h.report)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required fields")
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		badRequest(c, "invalid check-in date")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		badRequest(c, "invalid check-out date")
		return
	}

	b, err := h.service.Book(c.Request.Context(), booking.BookRoomInput{
		GuestEmail:    req.GuestEmail,
		RoomType:      req.RoomType,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Booking successful!",
		"booking":     toBookingResponse(b),
		"total_price": b.TotalPrice,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required fields")
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		badRequest(c, "invalid check-in date")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		badRequest(c, "invalid check-out date")
		return
	}

	b, err := h.service.Update(c.Request.Context(), booking.UpdateInput{
		BookingID:     id,
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Booking updated successfully!",
		"total_price": b.TotalPrice,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel, "Booking cancelled successfully")
}

func (h *BookingHandler) checkIn(c *gin.Context) {
	h.transition(c, h.service.CheckIn, "Booking checked in successfully")
}

func (h *BookingHandler) checkOut(c *gin.Context) {
	h.transition(c, h.service.CheckOut, "Booking checked out successfully")
}

func (h *BookingHandler) transition(c *gin.Context, op func(context.Context, int64) (*domain.Booking, error), message string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := op(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"booking": toBookingResponse(b),
	})
}

func (h *BookingHandler) listForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userID"), 10, 64)
	if err != nil {
		badRequest(c, "User ID is required")
		return
	}
	summaries, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toSummaries(summaries)})
}

func (h *BookingHandler) confirmed(c *gin.Context) {
	h.listHistory(c, h.service.Confirmed)
}

func (h *BookingHandler) history(c *gin.Context) {
	h.listHistory(c, h.service.History)
}

func (h *BookingHandler) listHistory(c *gin.Context, op func(context.Context) ([]domain.BookingHistoryEntry, error)) {
	entries, err := op(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":           e.ID,
			"customerName": e.CustomerName,
			"room":         e.RoomNumber,
			"checkIn":      formatDate(e.CheckIn),
			"checkOut":     formatDate(e.CheckOut),
			"status":       e.Status,
			"hasFeedback":  e.HasFeedback,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *BookingHandler) report(c *gin.Context) {
	entries, err := h.service.Report(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":             e.ID,
			"customerName":   e.CustomerName,
			"room":           e.RoomNumber,
			"checkIn":        formatDate(e.CheckIn),
			"checkOut":       formatDate(e.CheckOut),
			"status":         e.Status,
			"payment_method": e.PaymentMethod,
			"total_price":    e.TotalPrice,
			"booking_date":   e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func toSummaries(summaries []domain.BookingSummary) []gin.H {
	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, gin.H{
			"id":          s.ID,
			"room":        s.RoomNumber,
			"checkIn":     formatDate(s.CheckIn),
			"checkOut":    formatDate(s.CheckOut),
			"status":      s.Status,
			"hasFeedback": s.HasFeedback,
		})
	}
	return out
}
