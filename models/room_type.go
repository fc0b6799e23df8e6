package models

import "gorm.io/gorm"

type RoomType struct {
	gorm.Model
	TypeName    string `json:"typeName" gorm:"column:type_name;type:varchar(100)"`
	Description string `json:"description" gorm:"type:text"`
	MaxGuests   int    `json:"maxGuests" gorm:"column:max_guests;default:2"`
}
