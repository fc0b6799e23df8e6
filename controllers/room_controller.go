package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type RoomController struct {
	CatalogSvc *services.CatalogService
}

func NewRoomController(svc *services.CatalogService) *RoomController {
	return &RoomController{CatalogSvc: svc}
}

// List handles GET /api/rooms.
func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.CatalogSvc.GetRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// Get handles GET /api/rooms/:roomNumber.
func (ctl *RoomController) Get(c *gin.Context) {
	room, err := ctl.CatalogSvc.GetRoom(c.Param("roomNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Create handles POST /api/rooms.
func (ctl *RoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := ctl.CatalogSvc.CreateRoom(room)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// Update handles PUT /api/rooms/:roomNumber.
func (ctl *RoomController) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctl.CatalogSvc.UpdateRoom(c.Param("roomNumber"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// RoomTypes handles GET /api/room-types.
func (ctl *RoomController) RoomTypes(c *gin.Context) {
	types, err := ctl.CatalogSvc.GetRoomTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// Menu handles GET /api/menu.
func (ctl *RoomController) Menu(c *gin.Context) {
	items, err := ctl.CatalogSvc.GetMenuItems(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}
