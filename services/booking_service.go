package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

// BookingService owns room check-in / check-out and the booking
// conflict rules. All mutations run in one transaction so the room flag
// and the account row can never diverge.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// GuestInfo is one accompanying guest in the check-in snapshot.
type GuestInfo struct {
	FullName string `json:"fullName"`
	Type     string `json:"type"`
}

// CheckInInput is the validated check-in request.
type CheckInInput struct {
	GuestName  string
	Email      string
	Phone      string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Reserve    bool // create the stay as a future reservation
	Guests     []GuestInfo
}

func (in *CheckInInput) validate() error {
	if strings.TrimSpace(in.GuestName) == "" {
		return apperrors.NewValidation("guest name is required")
	}
	if strings.TrimSpace(in.RoomNumber) == "" {
		return apperrors.NewValidation("room number is required")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return apperrors.NewValidation("check-in and check-out dates are required")
	}
	if in.CheckOut.Before(in.CheckIn) {
		return apperrors.NewValidation("check-out must not be before check-in")
	}
	return nil
}

// IntervalsOverlap reports inclusive overlap of two [start, end]
// intervals.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// roomConflictReason runs the coarse room guards that precede the
// interval scan. Empty result means the room itself raises no
// objection.
func roomConflictReason(room *models.Room) string {
	if !room.Active {
		return fmt.Sprintf("room %s is not active", room.RoomNumber)
	}
	if room.Booked {
		return fmt.Sprintf("room %s is already booked", room.RoomNumber)
	}
	return ""
}

// ConflictReport is the outcome of a pre-flight availability check.
// Existing is set only when the conflict comes from an overlapping
// stay rather than the room's own state.
type ConflictReport struct {
	Conflict bool
	Reason   string
	Existing *models.RoomAccount
}

// CheckConflict runs the room guards and then looks for an active stay
// on the room overlapping the requested interval. Intended for
// pre-flight checks; CheckIn repeats both steps under a row lock
// before creating anything.
func (s *BookingService) CheckConflict(roomNumber string, checkIn, checkOut time.Time) (*ConflictReport, error) {
	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("room " + roomNumber)
		}
		return nil, err
	}

	if reason := roomConflictReason(&room); reason != "" {
		return &ConflictReport{Conflict: true, Reason: reason}, nil
	}

	existing, err := findOverlap(s.DB, roomNumber, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &ConflictReport{}, nil
	}
	return &ConflictReport{
		Conflict: true,
		Reason: fmt.Sprintf(
			"room %s already has a stay from %s to %s",
			roomNumber,
			existing.CheckIn.Format("2006-01-02"),
			existing.CheckOut.Format("2006-01-02"),
		),
		Existing: existing,
	}, nil
}

func findOverlap(tx *gorm.DB, roomNumber string, checkIn, checkOut time.Time) (*models.RoomAccount, error) {
	var existing models.RoomAccount
	err := tx.
		Where("room_number = ? AND status IN ?", roomNumber, []string{models.AccountCheckedIn, models.AccountReserved}).
		Where("check_in <= ? AND check_out >= ?", checkOut, checkIn).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}

// CheckIn validates the request, rejects double-bookings and creates
// the room account, marking the room booked in the same transaction.
func (s *BookingService) CheckIn(in CheckInInput) (*models.RoomAccount, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var account models.RoomAccount

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_number = ?", in.RoomNumber).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("room " + in.RoomNumber)
			}
			return err
		}

		// Coarse guards before the interval scan.
		if reason := roomConflictReason(&room); reason != "" {
			return apperrors.NewConflict(reason)
		}

		existing, err := findOverlap(tx, in.RoomNumber, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.NewConflict(fmt.Sprintf(
				"room %s already has a stay from %s to %s",
				in.RoomNumber,
				existing.CheckIn.Format("2006-01-02"),
				existing.CheckOut.Format("2006-01-02"),
			))
		}

		status := models.AccountCheckedIn
		if in.Reserve {
			status = models.AccountReserved
		}

		guestsJSON, _ := json.Marshal(in.Guests) // best-effort snapshot

		account = models.RoomAccount{
			GuestName:  strings.TrimSpace(in.GuestName),
			Email:      strings.TrimSpace(in.Email),
			Phone:      strings.TrimSpace(in.Phone),
			RoomNumber: room.RoomNumber,
			RoomID:     room.ID,
			CheckIn:    in.CheckIn,
			CheckOut:   in.CheckOut,
			Status:     status,
			Guests:     datatypes.JSON(guestsJSON),
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("booked", true).Error; err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		return nil, translateTxErr(txErr)
	}
	return &account, nil
}

// CheckOut closes the checked-in account for a room and frees the room.
// Refused while unpaid ledger entries remain unless force is set.
func (s *BookingService) CheckOut(roomNumber string, force bool) (*models.RoomAccount, error) {
	var account models.RoomAccount

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_number = ? AND status = ?", roomNumber, models.AccountCheckedIn).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("checked-in account for room " + roomNumber)
			}
			return err
		}

		if !force {
			var unpaid int64
			if err := tx.Model(&models.LedgerEntry{}).
				Where("room_account_id = ? AND status = ?", account.ID, models.EntryUnpaid).
				Count(&unpaid).Error; err != nil {
				return err
			}
			if unpaid > 0 {
				return apperrors.NewConflict(fmt.Sprintf("room %s has %d unpaid ledger entries", roomNumber, unpaid))
			}
		}

		now := time.Now().UTC()
		if err := tx.Model(&account).Updates(map[string]interface{}{
			"status":    models.AccountCheckedOut,
			"check_out": now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", account.RoomID).
			Update("booked", false).Error; err != nil {
			return err
		}

		account.Status = models.AccountCheckedOut
		account.CheckOut = now
		return nil
	})

	if txErr != nil {
		return nil, translateTxErr(txErr)
	}
	return &account, nil
}
