package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type CreateInvoicePayload struct {
	Kind       string `json:"kind" binding:"required"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	RoomNumber string `json:"roomNumber"`

	RoomPrice float64 `json:"roomPrice"`
	TotalDays int     `json:"totalDays"`

	Items []services.InvoiceLineInput `json:"items"`

	CGSTPercent *float64 `json:"cgstPercent"`
	CGSTAmount  *float64 `json:"cgstAmount"`
	SGSTPercent *float64 `json:"sgstPercent"`
	SGSTAmount  *float64 `json:"sgstAmount"`

	ExtraCharges float64 `json:"extraCharges"`
	Discount     float64 `json:"discount"`
	PaymentMode  string  `json:"paymentMode" binding:"required"`
}

type InvoiceController struct {
	InvoiceSvc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceSvc: svc}
}

// Create handles POST /api/invoices.
func (ctl *InvoiceController) Create(c *gin.Context) {
	var payload CreateInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := ctl.InvoiceSvc.CreateInvoice(services.CreateInvoiceInput{
		Kind:         payload.Kind,
		GuestName:    payload.GuestName,
		GuestPhone:   payload.GuestPhone,
		RoomNumber:   payload.RoomNumber,
		RoomPrice:    payload.RoomPrice,
		TotalDays:    payload.TotalDays,
		Items:        payload.Items,
		CGSTPercent:  payload.CGSTPercent,
		CGSTAmount:   payload.CGSTAmount,
		SGSTPercent:  payload.SGSTPercent,
		SGSTAmount:   payload.SGSTAmount,
		ExtraCharges: payload.ExtraCharges,
		Discount:     payload.Discount,
		PaymentMode:  payload.PaymentMode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

// Get handles GET /api/invoices/:kind/:invoiceNo.
func (ctl *InvoiceController) Get(c *gin.Context) {
	invoice, err := ctl.InvoiceSvc.GetInvoice(c.Param("kind"), c.Param("invoiceNo"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// List handles GET /api/invoices.
func (ctl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctl.InvoiceSvc.ListInvoices(c.Query("kind"), c.Query("roomNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}
