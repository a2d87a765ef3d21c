package api

import (
	"context"
	"net/http"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
	"github.com/Daniyal1234-alt/hotelops/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

type createRoomRequest struct {
	RoomNumber  string  `json:"room_number" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type updateRoomRequest struct {
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type roomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type roomResponse struct {
	ID          int64   `json:"id"`
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

func toRoomResponse(r domain.Room) roomResponse {
	return roomResponse{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		Type:        r.Type,
		Price:       r.Price,
		Status:      string(r.Status),
		Description: r.Description,
	}
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/rooms", h.listAvailable)
	router.GET("/rooms-list", h.list)
	router.GET("/room-details/:id", h.get)
	router.GET("/roomidbyroomnumber/:roomNumber", h.idByRoomNumber)
	router.POST("/create-room", h.create)
	router.PUT("/update-room/:id", h.update)
	router.DELETE("/remove-room/:id", h.remove)
	router.PATCH("/rooms/:id/status", h.setStatus)
}

func (h *RoomHandler) listAvailable(c *gin.Context) {
	h.respondList(c, h.service.ListAvailable)
}

func (h *RoomHandler) list(c *gin.Context) {
	h.respondList(c, h.service.List)
}

func (h *RoomHandler) respondList(c *gin.Context, op func(context.Context) ([]domain.Room, error)) {
	roomList, err := op(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]roomResponse, 0, len(roomList))
	for _, r := range roomList {
		out = append(out, toRoomResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(*room))
}

func (h *RoomHandler) idByRoomNumber(c *gin.Context) {
	id, err := h.service.IDByRoomNumber(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room_id": id})
}

func (h *RoomHandler) create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	room, err := h.service.Create(c.Request.Context(), repository.CreateRoomInput{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": room.ID})
}

func (h *RoomHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	err := h.service.Update(c.Request.Context(), repository.UpdateRoomInput{
		ID:          id,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room updated successfully"})
}

func (h *RoomHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room removed successfully"})
}

func (h *RoomHandler) setStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req roomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status")
		return
	}
	if err := h.service.SetStatus(c.Request.Context(), id, domain.RoomStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room status updated"})
}
