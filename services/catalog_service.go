package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

// CatalogService covers the minimal room and menu catalog the core
// components look rooms and prices up in.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) CreateRoom(room models.Room) (models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return room, apperrors.NewValidation("room number is required")
	}
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				room.RoomTypeID = nil
			} else {
				return room, err
			}
		}
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return room, apperrors.NewConflict("room " + room.RoomNumber + " already exists")
		}
		return room, err
	}
	return room, nil
}

func (s *CatalogService) GetRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *CatalogService) GetRoom(roomNumber string) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").Where("room_number = ?", roomNumber).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, apperrors.NewNotFound("room " + roomNumber)
	}
	return room, err
}

// UpdateRoom changes catalog fields only. The booked flag belongs to
// the booking transaction and is not writable here.
func (s *CatalogService) UpdateRoom(roomNumber string, updates map[string]interface{}) (models.Room, error) {
	delete(updates, "booked")
	room, err := s.GetRoom(roomNumber)
	if err != nil {
		return room, err
	}
	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return room, err
	}
	return s.GetRoom(roomNumber)
}

func (s *CatalogService) GetRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *CatalogService) GetMenuItems(category string) ([]models.MenuItem, error) {
	q := s.DB.Where("available = ?", true).Order("category, name")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.MenuItem
	err := q.Find(&items).Error
	return items, err
}
