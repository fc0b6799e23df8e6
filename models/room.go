package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// Nullable so a room can be created before its type is assigned;
	// avoids inserting FK=0 when the client omits it.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Floor       string  `json:"floor" gorm:"type:varchar(10)"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active" gorm:"default:true"`
	Booked      bool    `json:"booked" gorm:"default:false"`
	Description string  `json:"description" gorm:"type:text"`

	RoomType RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}
