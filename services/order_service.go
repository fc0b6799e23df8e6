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

// Order types.
const (
	OrderTypeDineIn      = "dine-in"
	OrderTypeTakeaway    = "takeaway"
	OrderTypeRoomService = "room-service"
)

// orderNoAttempts bounds the retry loop on order-number collisions.
const orderNoAttempts = 3

// prepaidMethods settle at intake time; pay_at_hotel lands in the
// unpaid bucket and waits for settlement.
var prepaidMethods = map[string]bool{
	models.PayOnline: true,
	models.PayCash:   true,
	models.PayCard:   true,
}

// legalOrderTransitions is the kitchen lifecycle state machine.
var legalOrderTransitions = map[string][]string{
	models.OrderPending:   {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderCompleted},
}

// CanTransitionOrder reports whether an order may move between the two
// lifecycle statuses.
func CanTransitionOrder(from, to string) bool {
	for _, next := range legalOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsPrepaid derives the ledger bucket from the payment method.
func IsPrepaid(paymentMethod string) bool {
	return prepaidMethods[paymentMethod]
}

// OrderService is the intake pipeline: validate, price, persist, and
// hand room-linked orders to the ledger.
type OrderService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewOrderService(db *gorm.DB, ledger *LedgerService) *OrderService {
	return &OrderService{DB: db, Ledger: ledger}
}

// OrderItemInput is one requested line. When MenuItemID is set, name,
// price and tax percents default from the menu.
type OrderItemInput struct {
	MenuItemID  *uint    `json:"menuItemId,omitempty"`
	Name        string   `json:"name,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Quantity    int      `json:"quantity"`
	CGSTPercent *float64 `json:"cgstPercent,omitempty"`
	CGSTAmount  *float64 `json:"cgstAmount,omitempty"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty"`
	SGSTAmount  *float64 `json:"sgstAmount,omitempty"`
}

// CreateOrderInput is the validated intake request.
type CreateOrderInput struct {
	OrderType     string
	RoomNumber    string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Items         []OrderItemInput
}

func (in *CreateOrderInput) roomLinked() bool {
	return in.OrderType == OrderTypeRoomService || in.PaymentMethod == models.PayAtHotel
}

// ValidateOrderInput checks the parts of the request that need no
// database access.
func ValidateOrderInput(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return apperrors.NewValidation("order requires at least one item")
	}
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return apperrors.NewValidation(fmt.Sprintf("item %d: quantity must be positive", i))
		}
		if item.MenuItemID == nil && (strings.TrimSpace(item.Name) == "" || item.UnitPrice == nil) {
			return apperrors.NewValidation(fmt.Sprintf("item %d: needs a menu item id or a name and unit price", i))
		}
	}
	if in.roomLinked() {
		if strings.TrimSpace(in.RoomNumber) == "" {
			return apperrors.NewValidation("room-linked order requires a room number")
		}
		if strings.TrimSpace(in.CustomerName) == "" {
			return apperrors.NewValidation("room-linked order requires the guest name")
		}
	}
	return nil
}

// CreateOrder runs the intake pipeline. Room-linked orders require the
// named guest to be checked in to the stated room.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if err := ValidateOrderInput(in); err != nil {
		return nil, err
	}

	if in.roomLinked() {
		var account models.RoomAccount
		err := s.DB.
			Where("room_number = ? AND status = ?", in.RoomNumber, models.AccountCheckedIn).
			First(&account).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFound("checked-in account for room " + in.RoomNumber)
			}
			return nil, err
		}
		if !strings.EqualFold(strings.TrimSpace(in.CustomerName), account.GuestName) {
			return nil, apperrors.NewValidation(fmt.Sprintf(
				"guest %q is not checked in to room %s", in.CustomerName, in.RoomNumber))
		}
	}

	order, err := s.buildOrder(in)
	if err != nil {
		return nil, err
	}

	var createErr error
	for attempt := 0; attempt < orderNoAttempts; attempt++ {
		no, gErr := utils.GenerateOrderNo(time.Now().UTC())
		if gErr != nil {
			return nil, apperrors.NewInternal(gErr)
		}
		order.OrderNumber = no

		createErr = s.DB.Create(order).Error
		if createErr == nil {
			break
		}
		if isDuplicateErr(createErr) {
			order.ID = 0
			for i := range order.Items {
				order.Items[i].ID = 0
				order.Items[i].OrderID = 0
			}
			continue
		}
		return nil, translateTxErr(createErr)
	}
	if createErr != nil {
		return nil, apperrors.NewConflict("could not allocate a unique order number")
	}

	if in.roomLinked() {
		if err := s.Ledger.AttachOrder(in.RoomNumber, order, IsPrepaid(in.PaymentMethod)); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// buildOrder resolves menu lookups and computes all totals.
func (s *OrderService) buildOrder(in CreateOrderInput) (*models.Order, error) {
	now := time.Now().UTC()

	order := &models.Order{
		OrderType:     in.OrderType,
		RoomNumber:    strings.TrimSpace(in.RoomNumber),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		PaymentMethod: in.PaymentMethod,
		Status:        models.OrderPending,
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero

	for _, item := range in.Items {
		name := strings.TrimSpace(item.Name)
		unitPrice := item.UnitPrice
		cgstPct := item.CGSTPercent
		sgstPct := item.SGSTPercent

		if item.MenuItemID != nil {
			var menuItem models.MenuItem
			if err := s.DB.First(&menuItem, *item.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperrors.NewNotFound(fmt.Sprintf("menu item %d", *item.MenuItemID))
				}
				return nil, err
			}
			if !menuItem.Available {
				return nil, apperrors.NewValidation(fmt.Sprintf("menu item %q is not available", menuItem.Name))
			}
			if name == "" {
				name = menuItem.Name
			}
			if unitPrice == nil {
				unitPrice = &menuItem.Price
			}
			if cgstPct == nil && item.CGSTAmount == nil {
				cgstPct = menuItem.CGSTPercent
			}
			if sgstPct == nil && item.SGSTAmount == nil {
				sgstPct = menuItem.SGSTPercent
			}
		}

		base := decimal.NewFromFloat(*unitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		cgst, sgst, err := ComputeLineTax(base,
			decPtr(cgstPct), decPtr(item.CGSTAmount),
			decPtr(sgstPct), decPtr(item.SGSTAmount))
		if err != nil {
			return nil, err
		}
		lineTax := cgst.Add(sgst)

		subtotal = subtotal.Add(base)
		taxTotal = taxTotal.Add(lineTax)

		order.Items = append(order.Items, models.OrderItem{
			MenuItemID:  item.MenuItemID,
			Name:        name,
			UnitPrice:   *unitPrice,
			Quantity:    item.Quantity,
			CGSTPercent: cgstPct,
			CGSTAmount:  item.CGSTAmount,
			SGSTPercent: sgstPct,
			SGSTAmount:  item.SGSTAmount,
			TaxAmount:   money(lineTax),
			LineTotal:   money(base.Add(lineTax)),
		})
	}

	order.Subtotal = money(subtotal)
	order.TaxTotal = money(taxTotal)
	order.GrandTotal = money(subtotal.Add(taxTotal))

	if IsPrepaid(in.PaymentMethod) {
		order.PaymentStatus = models.PaymentPaid
		order.PaidAt = &now
	} else {
		order.PaymentStatus = models.PaymentPending
	}
	return order, nil
}

// UpdateStatus advances the kitchen lifecycle, rejecting illegal jumps.
func (s *OrderService) UpdateStatus(orderNumber, newStatus string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order " + orderNumber)
		}
		return nil, err
	}

	if !CanTransitionOrder(order.Status, newStatus) {
		return nil, apperrors.NewValidation(fmt.Sprintf(
			"cannot move order from %q to %q", order.Status, newStatus))
	}

	if err := s.DB.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, translateTxErr(err)
	}
	order.Status = newStatus
	return &order, nil
}

// GetOrder loads one order with its items.
func (s *OrderService) GetOrder(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order " + orderNumber)
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders, optionally filtered by lifecycle status
// and room.
func (s *OrderService) ListOrders(status, roomNumber string) ([]models.Order, error) {
	q := s.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomNumber != "" {
		q = q.Where("room_number = ?", roomNumber)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
