package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
	"hotelops-backend/utils"
)

// invoiceNoAttempts bounds the retry loop on invoice-number collisions
// before the failure surfaces as a conflict.
const invoiceNoAttempts = 5

var invoicePrefixes = map[string]string{
	models.InvoiceRoom:       "HMD",
	models.InvoiceRestaurant: "INV",
	models.InvoiceDirectFood: "DFB",
	models.InvoiceManagement: "MGT",
}

// InvoiceService builds normalized invoices of the four kinds and hands
// room-billed ones to the ledger in the same transaction.
type InvoiceService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewInvoiceService(db *gorm.DB, ledger *LedgerService) *InvoiceService {
	return &InvoiceService{DB: db, Ledger: ledger}
}

// InvoiceLineInput is one food line on a restaurant, direct-food or
// management invoice.
type InvoiceLineInput struct {
	Name        string   `json:"name"`
	UnitPrice   float64  `json:"unitPrice"`
	Quantity    int      `json:"quantity"`
	CGSTPercent *float64 `json:"cgstPercent,omitempty"`
	CGSTAmount  *float64 `json:"cgstAmount,omitempty"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty"`
	SGSTAmount  *float64 `json:"sgstAmount,omitempty"`
}

// CreateInvoiceInput is the validated request for CreateInvoice.
type CreateInvoiceInput struct {
	Kind       string
	GuestName  string
	GuestPhone string
	RoomNumber string

	// Room-stay context (room invoices).
	RoomPrice float64
	TotalDays int

	Items []InvoiceLineInput

	// Invoice-level tax pair (room invoices).
	CGSTPercent *float64
	CGSTAmount  *float64
	SGSTPercent *float64
	SGSTAmount  *float64

	ExtraCharges float64
	Discount     float64
	PaymentMode  string
}

func (in *CreateInvoiceInput) validate() error {
	if _, ok := invoicePrefixes[in.Kind]; !ok {
		return apperrors.NewValidation("unknown invoice kind: " + in.Kind)
	}
	switch in.Kind {
	case models.InvoiceRoom:
		if strings.TrimSpace(in.RoomNumber) == "" {
			return apperrors.NewValidation("room invoice requires a room number")
		}
		if in.TotalDays <= 0 {
			return apperrors.NewValidation("room invoice requires totalDays > 0")
		}
		if in.RoomPrice < 0 {
			return apperrors.NewValidation("room price must not be negative")
		}
	default:
		if len(in.Items) == 0 {
			return apperrors.NewValidation("invoice requires at least one line item")
		}
	}
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return apperrors.NewValidation(fmt.Sprintf("item %d: quantity must be positive", i))
		}
		if item.UnitPrice < 0 {
			return apperrors.NewValidation(fmt.Sprintf("item %d: unit price must not be negative", i))
		}
	}
	if in.PaymentMode == models.PayToRoom && strings.TrimSpace(in.RoomNumber) == "" {
		return apperrors.NewValidation("room-billed invoice requires a room number")
	}
	return nil
}

// buildInvoice computes every monetary field of the invoice from the
// input. Pure: no persistence, no invoice number.
func buildInvoice(in CreateInvoiceInput, now time.Time) (*models.Invoice, error) {
	inv := &models.Invoice{
		Kind:        in.Kind,
		InvoiceDate: now,
		GuestName:   strings.TrimSpace(in.GuestName),
		GuestPhone:  strings.TrimSpace(in.GuestPhone),
		RoomNumber:  strings.TrimSpace(in.RoomNumber),
		CGSTPercent: in.CGSTPercent,
		CGSTAmount:  in.CGSTAmount,
		SGSTPercent: in.SGSTPercent,
		SGSTAmount:  in.SGSTAmount,
		PaymentMode: in.PaymentMode,
	}

	totalFood := decimal.Zero
	cgstTotal := decimal.Zero
	sgstTotal := decimal.Zero

	for _, item := range in.Items {
		amount := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		cgst, sgst, err := ComputeLineTax(amount,
			decPtr(item.CGSTPercent), decPtr(item.CGSTAmount),
			decPtr(item.SGSTPercent), decPtr(item.SGSTAmount))
		if err != nil {
			return nil, err
		}

		totalFood = totalFood.Add(amount)
		cgstTotal = cgstTotal.Add(cgst)
		sgstTotal = sgstTotal.Add(sgst)

		inv.Items = append(inv.Items, models.InvoiceItem{
			Name:        strings.TrimSpace(item.Name),
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Amount:      money(amount),
			CGSTPercent: item.CGSTPercent,
			CGSTAmount:  item.CGSTAmount,
			SGSTPercent: item.SGSTPercent,
			SGSTAmount:  item.SGSTAmount,
			TaxAmount:   money(cgst.Add(sgst)),
		})
	}

	subTotal := totalFood
	if in.Kind == models.InvoiceRoom {
		roomCharges := decimal.NewFromFloat(in.RoomPrice).Mul(decimal.NewFromInt(int64(in.TotalDays)))
		subTotal = roomCharges.Add(totalFood)

		// Invoice-level GST applies to the sub total.
		cgst, sgst, err := ComputeLineTax(subTotal,
			decPtr(in.CGSTPercent), decPtr(in.CGSTAmount),
			decPtr(in.SGSTPercent), decPtr(in.SGSTAmount))
		if err != nil {
			return nil, err
		}
		cgstTotal = cgstTotal.Add(cgst)
		sgstTotal = sgstTotal.Add(sgst)

		inv.RoomPrice = in.RoomPrice
		inv.TotalDays = in.TotalDays
		inv.RoomCharges = money(roomCharges)
	}

	gst := cgstTotal.Add(sgstTotal)
	extra := decimal.NewFromFloat(in.ExtraCharges)
	discount := decimal.NewFromFloat(in.Discount)
	finalTotal := subTotal.Add(gst).Add(extra).Sub(discount)

	inv.TotalFoodAmount = money(totalFood)
	inv.CGSTTotal = money(cgstTotal)
	inv.SGSTTotal = money(sgstTotal)
	inv.GSTAmount = money(gst)
	inv.ExtraCharges = money(extra)
	inv.Discount = money(discount)
	inv.SubTotal = money(subTotal)
	inv.TotalAmount = money(finalTotal)

	applyPaymentPolicy(inv, now)
	return inv, nil
}

// applyPaymentPolicy sets the initial payment fields by mode: billed to
// room or awaiting a gateway stays pending with the full amount due;
// everything else (cash, card) is settled on the spot.
func applyPaymentPolicy(inv *models.Invoice, now time.Time) {
	switch inv.PaymentMode {
	case models.PayToRoom, models.PayOnline:
		inv.PaymentStatus = models.PaymentPending
		inv.PaidAmount = 0
		inv.DueAmount = inv.TotalAmount
	default:
		inv.PaymentStatus = models.PaymentPaid
		inv.PaidAmount = inv.TotalAmount
		inv.DueAmount = 0
		inv.PaidAt = &now
	}
}

// CreateInvoice validates, computes and persists an invoice, retrying
// number collisions a bounded number of times. Room-billed invoices are
// attached to the room ledger in the same transaction.
func (s *InvoiceService) CreateInvoice(in CreateInvoiceInput) (*models.Invoice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv, err := buildInvoice(in, now)
	if err != nil {
		return nil, err
	}

	roomBilled := inv.PaymentMode == models.PayToRoom

	var createErr error
	for attempt := 0; attempt < invoiceNoAttempts; attempt++ {
		no, gErr := utils.GenerateInvoiceNo(invoicePrefixes[in.Kind], now)
		if gErr != nil {
			return nil, apperrors.NewInternal(gErr)
		}
		inv.InvoiceNo = no

		createErr = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(inv).Error; err != nil {
				return err
			}
			if roomBilled {
				return s.Ledger.attachInvoiceTx(tx, inv.RoomNumber, inv)
			}
			return nil
		})
		if createErr == nil {
			return inv, nil
		}
		if isDuplicateErr(createErr) {
			inv.ID = 0
			for i := range inv.Items {
				inv.Items[i].ID = 0
				inv.Items[i].InvoiceID = 0
			}
			continue
		}
		return nil, translateTxErr(createErr)
	}
	return nil, apperrors.NewConflict("could not allocate a unique invoice number")
}

// GetInvoice loads one invoice by kind and number.
func (s *InvoiceService) GetInvoice(kind, invoiceNo string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.Preload("Items").
		Where("kind = ? AND invoice_no = ?", kind, invoiceNo).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("invoice " + invoiceNo)
		}
		return nil, err
	}
	return &inv, nil
}

// ListInvoices returns invoices, optionally filtered by kind and room.
func (s *InvoiceService) ListInvoices(kind, roomNumber string) ([]models.Invoice, error) {
	q := s.DB.Preload("Items").Order("created_at DESC")
	if kind != "" {
		if _, ok := invoicePrefixes[kind]; !ok {
			return nil, apperrors.NewValidation("unknown invoice kind: " + kind)
		}
		q = q.Where("kind = ?", kind)
	}
	if roomNumber != "" {
		q = q.Where("room_number = ?", roomNumber)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
