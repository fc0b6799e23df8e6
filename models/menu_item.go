package models

import "gorm.io/gorm"

// MenuItem is the priced catalog entry order intake resolves line items
// against when the client sends only a menu item id.
type MenuItem struct {
	gorm.Model
	Name        string   `json:"name" gorm:"type:varchar(191)"`
	Category    string   `json:"category" gorm:"type:varchar(64)"`
	Price       float64  `json:"price" gorm:"type:decimal(10,2)"`
	CGSTPercent *float64 `json:"cgstPercent,omitempty" gorm:"column:cgst_percent"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty" gorm:"column:sgst_percent"`
	Available   bool     `json:"available" gorm:"default:true"`
}
