package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomAccount statuses.
const (
	AccountCheckedIn  = "checked-in"
	AccountCheckedOut = "checked-out"
	AccountReserved   = "reserved"
)

// RoomAccount is the running account for one stay. Financial linkage to
// orders and invoices lives in LedgerEntry rows, one per attached
// document; the account row itself is the unit of locking for all
// attach/settle operations.
type RoomAccount struct {
	gorm.Model

	GuestName string `json:"guestName" gorm:"column:guest_name;type:varchar(191)"`
	Email     string `json:"email" gorm:"type:varchar(191)"`
	Phone     string `json:"phone" gorm:"type:varchar(32)"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;index;type:varchar(50)"`
	RoomID     uint   `json:"roomId" gorm:"column:room_id;index"`

	CheckIn  time.Time `json:"checkIn" gorm:"column:check_in"`
	CheckOut time.Time `json:"checkOut" gorm:"column:check_out"`
	Status   string    `json:"status" gorm:"type:varchar(32);index"`

	// Snapshot of the accompanying guest list captured at check-in.
	Guests datatypes.JSON `json:"guests,omitempty" gorm:"column:guests"`

	Room    Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Entries []LedgerEntry `json:"-" gorm:"foreignKey:RoomAccountID"`
}
