package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-backend/apperrors"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

type CheckInPayload struct {
	GuestName  string               `json:"guestName" binding:"required"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	RoomNumber string               `json:"roomNumber" binding:"required"`
	CheckIn    string               `json:"checkIn" binding:"required"`
	CheckOut   string               `json:"checkOut" binding:"required"`
	Reserve    bool                 `json:"reserve"`
	Guests     []services.GuestInfo `json:"guests"`
}

type CheckOutPayload struct {
	Force bool `json:"force"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	LedgerSvc  *services.LedgerService
}

func NewBookingController(bookingSvc *services.BookingService, ledgerSvc *services.LedgerService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, LedgerSvc: ledgerSvc}
}

// parseDate accepts "2006-01-02" or RFC3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("invalid date: " + value)
	}
	return t, nil
}

// CheckIn handles POST /api/accounts/check-in.
func (ctl *BookingController) CheckIn(c *gin.Context) {
	var payload CheckInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	checkIn, err := parseDate(payload.CheckIn)
	if err != nil {
		respondError(c, err)
		return
	}
	checkOut, err := parseDate(payload.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}

	account, err := ctl.BookingSvc.CheckIn(services.CheckInInput{
		GuestName:  payload.GuestName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		RoomNumber: payload.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Reserve:    payload.Reserve,
		Guests:     payload.Guests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, account)
}

// CheckAvailability handles GET /api/accounts/availability.
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	roomNumber := c.Query("roomNumber")
	if roomNumber == "" {
		respondError(c, apperrors.NewValidation("roomNumber query parameter is required"))
		return
	}
	checkIn, err := parseDate(c.Query("checkIn"))
	if err != nil {
		respondError(c, err)
		return
	}
	checkOut, err := parseDate(c.Query("checkOut"))
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := ctl.BookingSvc.CheckConflict(roomNumber, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	if !report.Conflict {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"conflict": false})
		return
	}
	resp := gin.H{"conflict": true, "reason": report.Reason}
	if report.Existing != nil {
		resp["existing"] = gin.H{
			"status":   report.Existing.Status,
			"checkIn":  report.Existing.CheckIn,
			"checkOut": report.Existing.CheckOut,
		}
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// CheckOut handles POST /api/accounts/:roomNumber/check-out.
func (ctl *BookingController) CheckOut(c *gin.Context) {
	var payload CheckOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	account, err := ctl.BookingSvc.CheckOut(c.Param("roomNumber"), payload.Force)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, account)
}

// GetAccount handles GET /api/accounts/:roomNumber.
func (ctl *BookingController) GetAccount(c *gin.Context) {
	view, err := ctl.LedgerSvc.Account(c.Param("roomNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// ListAccounts handles GET /api/accounts.
func (ctl *BookingController) ListAccounts(c *gin.Context) {
	accounts, err := ctl.LedgerSvc.ListAccounts(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, accounts)
}
