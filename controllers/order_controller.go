package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type CreateOrderPayload struct {
	OrderType     string                    `json:"orderType" binding:"required"`
	RoomNumber    string                    `json:"roomNumber"`
	CustomerName  string                    `json:"customerName"`
	CustomerPhone string                    `json:"customerPhone"`
	PaymentMethod string                    `json:"paymentMethod" binding:"required"`
	Items         []services.OrderItemInput `json:"items" binding:"required"`
}

type UpdateOrderStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: svc}
}

// Create handles POST /api/orders.
func (ctl *OrderController) Create(c *gin.Context) {
	var payload CreateOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctl.OrderSvc.CreateOrder(services.CreateOrderInput{
		OrderType:     payload.OrderType,
		RoomNumber:    payload.RoomNumber,
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		PaymentMethod: payload.PaymentMethod,
		Items:         payload.Items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

// Get handles GET /api/orders/:orderNumber.
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.OrderSvc.GetOrder(c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// List handles GET /api/orders.
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.OrderSvc.ListOrders(c.Query("status"), c.Query("roomNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/:orderNumber/status.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var payload UpdateOrderStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctl.OrderSvc.UpdateStatus(c.Param("orderNumber"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
