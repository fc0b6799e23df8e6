package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice kinds. Each kind had its own collection in the legacy system,
// so invoice numbers are unique per kind, not globally.
const (
	InvoiceRoom       = "room"
	InvoiceRestaurant = "restaurant"
	InvoiceDirectFood = "direct-food"
	InvoiceManagement = "management"
)

type Invoice struct {
	gorm.Model

	Kind      string `json:"kind" gorm:"type:varchar(24);uniqueIndex:idx_kind_no"`
	InvoiceNo string `json:"invoiceNo" gorm:"column:invoice_no;type:varchar(32);uniqueIndex:idx_kind_no"`

	InvoiceDate time.Time `json:"invoiceDate" gorm:"column:invoice_date"`

	GuestName  string `json:"guestName,omitempty" gorm:"column:guest_name;type:varchar(191)"`
	GuestPhone string `json:"guestPhone,omitempty" gorm:"column:guest_phone;type:varchar(32)"`
	RoomNumber string `json:"roomNumber,omitempty" gorm:"column:room_number;index;type:varchar(50)"`

	// Room-stay context (room invoices only).
	RoomPrice   float64 `json:"roomPrice,omitempty" gorm:"column:room_price;type:decimal(10,2)"`
	TotalDays   int     `json:"totalDays,omitempty" gorm:"column:total_days"`
	RoomCharges float64 `json:"roomCharges,omitempty" gorm:"column:room_charges;type:decimal(10,2)"`

	TotalFoodAmount float64 `json:"totalFoodAmount" gorm:"column:total_food_amount;type:decimal(10,2)"`

	// Invoice-level tax pair, percent XOR amount per component. Food
	// invoices carry the pairs on their line items instead.
	CGSTPercent *float64 `json:"cgstPercent,omitempty" gorm:"column:cgst_percent"`
	CGSTAmount  *float64 `json:"cgstAmount,omitempty" gorm:"column:cgst_amount"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty" gorm:"column:sgst_percent"`
	SGSTAmount  *float64 `json:"sgstAmount,omitempty" gorm:"column:sgst_amount"`

	// Computed tax totals.
	CGSTTotal float64 `json:"cgstTotal" gorm:"column:cgst_total;type:decimal(10,2)"`
	SGSTTotal float64 `json:"sgstTotal" gorm:"column:sgst_total;type:decimal(10,2)"`
	GSTAmount float64 `json:"gstAmount" gorm:"column:gst_amount;type:decimal(10,2)"`

	ExtraCharges float64 `json:"extraCharges" gorm:"column:extra_charges;type:decimal(10,2)"`
	Discount     float64 `json:"discount" gorm:"type:decimal(10,2)"`

	SubTotal    float64 `json:"subTotal" gorm:"column:sub_total;type:decimal(10,2)"`
	TotalAmount float64 `json:"totalAmount" gorm:"column:total_amount;type:decimal(10,2)"`
	PaidAmount  float64 `json:"paidAmount" gorm:"column:paid_amount;type:decimal(10,2)"`
	DueAmount   float64 `json:"dueAmount" gorm:"column:due_amount;type:decimal(10,2)"`

	PaymentMode   string     `json:"paymentMode" gorm:"column:payment_mode;type:varchar(32)"`
	PaymentStatus string     `json:"paymentStatus" gorm:"column:payment_status;type:varchar(16);index"`
	PaidAt        *time.Time `json:"paidAt,omitempty" gorm:"column:paid_at"`

	Items []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID"`
}

type InvoiceItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"-" gorm:"index"`

	Name      string  `json:"name" gorm:"type:varchar(191)"`
	UnitPrice float64 `json:"unitPrice" gorm:"column:unit_price;type:decimal(10,2)"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount" gorm:"type:decimal(10,2)"`

	CGSTPercent *float64 `json:"cgstPercent,omitempty" gorm:"column:cgst_percent"`
	CGSTAmount  *float64 `json:"cgstAmount,omitempty" gorm:"column:cgst_amount"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty" gorm:"column:sgst_percent"`
	SGSTAmount  *float64 `json:"sgstAmount,omitempty" gorm:"column:sgst_amount"`

	TaxAmount float64 `json:"taxAmount" gorm:"column:tax_amount;type:decimal(10,2)"`
}
