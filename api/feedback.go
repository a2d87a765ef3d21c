package api

import (
	"net/http"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/service/feedback"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	service feedback.FeedbackUseCase
}

type submitFeedbackRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type submitComplaintRequest struct {
	UserID    int64  `json:"userId" binding:"required"`
	BookingID int64  `json:"bookingId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

func NewFeedbackHandler(service feedback.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Register(router *gin.RouterGroup) {
	router.POST("/feedback", h.submit)
	router.GET("/feedback/:bookingId", h.forBooking)
	router.GET("/feedback/room/:roomId", h.forRoom)
	router.POST("/complaint-request", h.submitComplaint)
	router.GET("/getcomplaintrequest", h.openComplaints)
	router.PATCH("/updatecomplaint-request/:id", h.resolveComplaint)
}

func (h *FeedbackHandler) submit(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "bookingId and rating are required")
		return
	}
	if _, err := h.service.Submit(c.Request.Context(), req.BookingID, req.Rating, req.Comment); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback submitted successfully"})
}

func (h *FeedbackHandler) forBooking(c *gin.Context) {
	id, ok := paramID(c, "bookingId")
	if !ok {
		return
	}
	list, err := h.service.ForBooking(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toFeedbackList(list)})
}

func (h *FeedbackHandler) forRoom(c *gin.Context) {
	id, ok := paramID(c, "roomId")
	if !ok {
		return
	}
	list, err := h.service.ForRoom(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": toFeedbackList(list)})
}

func (h *FeedbackHandler) submitComplaint(c *gin.Context) {
	var req submitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	complaint, err := h.service.SubmitComplaint(c.Request.Context(), req.UserID, req.BookingID, req.Type, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Submitted successfully", "id": complaint.ID})
}

func (h *FeedbackHandler) openComplaints(c *gin.Context) {
	complaints, err := h.service.OpenComplaints(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(complaints))
	for _, v := range complaints {
		out = append(out, gin.H{
			"id":            v.ID,
			"customer_name": v.CustomerName,
			"check_in":      formatDate(v.CheckIn),
			"check_out":     formatDate(v.CheckOut),
			"type":          v.Type,
			"message":       v.Message,
			"status":        v.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *FeedbackHandler) resolveComplaint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.ResolveComplaint(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Marked as resolved"})
}

func toFeedbackList(list []domain.Feedback) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, fb := range list {
		out = append(out, gin.H{
			"rating":       fb.Rating,
			"comment":      fb.Comment,
			"submitted_at": fb.SubmittedAt,
		})
	}
	return out
}
