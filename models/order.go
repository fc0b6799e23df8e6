package models

import (
	"time"

	"gorm.io/gorm"
)

// Order lifecycle statuses.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Payment statuses shared by orders and invoices.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Payment methods.
const (
	PayOnline  = "online"
	PayCash    = "cash"
	PayCard    = "card"
	PayAtHotel = "pay_at_hotel"
	PayToRoom  = "room"
)

type Order struct {
	gorm.Model

	OrderNumber string `json:"orderNumber" gorm:"column:order_number;uniqueIndex;type:varchar(64)"`
	OrderType   string `json:"orderType" gorm:"column:order_type;type:varchar(32)"`

	RoomNumber    string `json:"roomNumber,omitempty" gorm:"column:room_number;index;type:varchar(50)"`
	CustomerName  string `json:"customerName" gorm:"column:customer_name;type:varchar(191)"`
	CustomerPhone string `json:"customerPhone,omitempty" gorm:"column:customer_phone;type:varchar(32)"`

	Subtotal   float64 `json:"subtotal" gorm:"type:decimal(10,2)"`
	TaxTotal   float64 `json:"taxTotal" gorm:"column:tax_total;type:decimal(10,2)"`
	GrandTotal float64 `json:"grandTotal" gorm:"column:grand_total;type:decimal(10,2)"`

	PaymentMethod string     `json:"paymentMethod" gorm:"column:payment_method;type:varchar(32)"`
	PaymentStatus string     `json:"paymentStatus" gorm:"column:payment_status;type:varchar(16);index"`
	PaidAt        *time.Time `json:"paidAt,omitempty" gorm:"column:paid_at"`

	Status string `json:"status" gorm:"type:varchar(16);index"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem carries the percent/amount tax pair per GST component; at
// most one of each pair is set (see services.ComputeTax).
type OrderItem struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OrderID uint `json:"-" gorm:"index"`

	MenuItemID *uint  `json:"menuItemId,omitempty" gorm:"column:menu_item_id"`
	Name       string `json:"name" gorm:"type:varchar(191)"`

	UnitPrice float64 `json:"unitPrice" gorm:"column:unit_price;type:decimal(10,2)"`
	Quantity  int     `json:"quantity"`

	CGSTPercent *float64 `json:"cgstPercent,omitempty" gorm:"column:cgst_percent"`
	CGSTAmount  *float64 `json:"cgstAmount,omitempty" gorm:"column:cgst_amount"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty" gorm:"column:sgst_percent"`
	SGSTAmount  *float64 `json:"sgstAmount,omitempty" gorm:"column:sgst_amount"`

	TaxAmount float64 `json:"taxAmount" gorm:"column:tax_amount;type:decimal(10,2)"`
	LineTotal float64 `json:"lineTotal" gorm:"column:line_total;type:decimal(10,2)"`
}
