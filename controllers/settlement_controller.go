package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type SettleOrdersPayload struct {
	RoomNumber   string   `json:"roomNumber" binding:"required"`
	OrderNumbers []string `json:"orderNumbers" binding:"required"`
	PaymentMode  string   `json:"paymentMode" binding:"required"`
}

type SettleInvoicePayload struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	InvoiceNo   string `json:"invoiceNo" binding:"required"`
	PaymentMode string `json:"paymentMode" binding:"required"`
}

type SettlementController struct {
	LedgerSvc *services.LedgerService
}

func NewSettlementController(svc *services.LedgerService) *SettlementController {
	return &SettlementController{LedgerSvc: svc}
}

// SettleOrders handles POST /api/settlements/orders.
func (ctl *SettlementController) SettleOrders(c *gin.Context) {
	var payload SettleOrdersPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	if err := ctl.LedgerSvc.SettleOrders(payload.RoomNumber, payload.OrderNumbers, payload.PaymentMode); err != nil {
		respondError(c, err)
		return
	}
	view, err := ctl.LedgerSvc.Account(payload.RoomNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// SettleInvoice handles POST /api/settlements/invoices.
func (ctl *SettlementController) SettleInvoice(c *gin.Context) {
	var payload SettleInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	if err := ctl.LedgerSvc.SettleInvoice(payload.RoomNumber, payload.InvoiceNo, payload.PaymentMode); err != nil {
		respondError(c, err)
		return
	}
	view, err := ctl.LedgerSvc.Account(payload.RoomNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}
