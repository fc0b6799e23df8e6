package models

import (
	"time"

	"gorm.io/gorm"
)

// Ledger entry kinds and statuses.
const (
	EntryKindOrder   = "order"
	EntryKindInvoice = "invoice"

	EntryUnpaid = "unpaid"
	EntryPaid   = "paid"
)

// LedgerEntry links one order or invoice to a room account. The unique
// index over (account, kind, refNo) guarantees a document sits in
// exactly one bucket: attach is idempotent, and settlement flips the
// status of the single existing row.
type LedgerEntry struct {
	gorm.Model

	RoomAccountID uint   `json:"roomAccountId" gorm:"column:room_account_id;uniqueIndex:idx_account_kind_ref"`
	Kind          string `json:"kind" gorm:"type:varchar(16);uniqueIndex:idx_account_kind_ref"`
	RefNo         string `json:"refNo" gorm:"column:ref_no;type:varchar(64);uniqueIndex:idx_account_kind_ref"`

	Amount float64 `json:"amount"`
	Status string  `json:"status" gorm:"type:varchar(16);index"`

	PaymentMode string     `json:"paymentMode,omitempty" gorm:"column:payment_mode;type:varchar(32)"`
	PaidAt      *time.Time `json:"paidAt,omitempty" gorm:"column:paid_at"`
}
