package api

import (
	"net/http"

	"github.com/Daniyal1234-alt/hotelops/internal/service/users"
	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service users.UserUseCase
}

type createStaffRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hire_date" binding:"required"`
}

type updateStaffRequest struct {
	UserID   int64   `json:"user_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hire_date" binding:"required"`
}

func NewStaffHandler(service users.UserUseCase) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) Register(router *gin.RouterGroup) {
	router.GET("/staff", h.list)
	router.POST("/staff", h.create)
	router.PUT("/staff/:id", h.update)
	router.DELETE("/staff/:id", h.remove)
}

func (h *StaffHandler) list(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(staff))
	for _, m := range staff {
		out = append(out, gin.H{
			"staff_id":  m.ID,
			"user_id":   m.UserID,
			"name":      m.Name,
			"email":     m.Email,
			"position":  m.Position,
			"salary":    m.Salary,
			"hire_date": formatDate(m.HireDate),
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (h *StaffHandler) create(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		badRequest(c, "invalid hire date")
		return
	}
	member, err := h.service.CreateStaff(c.Request.Context(), users.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: hireDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "staff_id": member.ID})
}

func (h *StaffHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		badRequest(c, "invalid hire date")
		return
	}
	err = h.service.UpdateStaff(c.Request.Context(), users.UpdateStaffInput{
		StaffID:  id,
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: hireDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *StaffHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
