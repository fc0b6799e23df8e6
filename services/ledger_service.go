package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

// LedgerService manages the per-account unpaid/paid buckets and the
// settlement transitions between them. Every public method is one
// atomic read-modify-write: it locks the account row for the duration
// of the transaction, so concurrent operations on the same account
// serialize instead of losing updates.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// lockAccount loads the checked-in account for a room FOR UPDATE.
func lockAccount(tx *gorm.DB, roomNumber string) (*models.RoomAccount, error) {
	var account models.RoomAccount
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_number = ? AND status = ?", roomNumber, models.AccountCheckedIn).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("checked-in account for room " + roomNumber)
		}
		return nil, err
	}
	return &account, nil
}

// AttachOrder links an order to the room's ledger, into the paid bucket
// when prepaid. Attaching the same order number again is a no-op, so a
// retried intake cannot duplicate the linkage.
func (s *LedgerService) AttachOrder(roomNumber string, order *models.Order, isPrepaid bool) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, roomNumber)
		if err != nil {
			return err
		}

		var existing models.LedgerEntry
		err = tx.
			Where("room_account_id = ? AND kind = ? AND ref_no = ?",
				account.ID, models.EntryKindOrder, order.OrderNumber).
			First(&existing).Error
		if err == nil {
			return nil // already attached
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		entry := models.LedgerEntry{
			RoomAccountID: account.ID,
			Kind:          models.EntryKindOrder,
			RefNo:         order.OrderNumber,
			Amount:        order.GrandTotal,
			Status:        models.EntryUnpaid,
		}
		if isPrepaid {
			now := time.Now().UTC()
			entry.Status = models.EntryPaid
			entry.PaymentMode = order.PaymentMethod
			entry.PaidAt = &now
		}
		if err := tx.Create(&entry).Error; err != nil {
			if isDuplicateErr(err) {
				return nil // raced attach, entry already exists
			}
			return err
		}
		return nil
	})
	return translateTxErr(txErr)
}

// AttachInvoice links an invoice to the room's ledger. Invoices always
// enter unpaid; only settlement moves them.
func (s *LedgerService) AttachInvoice(roomNumber string, invoice *models.Invoice) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.attachInvoiceTx(tx, roomNumber, invoice)
	})
	return translateTxErr(txErr)
}

// attachInvoiceTx runs the attach inside a caller-owned transaction, so
// the invoice factory can create the invoice and its ledger entry
// atomically.
func (s *LedgerService) attachInvoiceTx(tx *gorm.DB, roomNumber string, invoice *models.Invoice) error {
	account, err := lockAccount(tx, roomNumber)
	if err != nil {
		return err
	}

	entry := models.LedgerEntry{
		RoomAccountID: account.ID,
		Kind:          models.EntryKindInvoice,
		RefNo:         invoice.InvoiceNo,
		Amount:        invoice.TotalAmount,
		Status:        models.EntryUnpaid,
	}
	if err := tx.Create(&entry).Error; err != nil {
		if isDuplicateErr(err) {
			return nil
		}
		return err
	}
	return nil
}

// settledOrNotFound maps a settle UPDATE that matched no unpaid rows
// to NotFound. A repeated settlement of the same refs lands here: the
// first one flipped them to paid, so the second matches nothing.
func settledOrNotFound(rowsAffected int64, what string) error {
	if rowsAffected == 0 {
		return apperrors.NewNotFound(what)
	}
	return nil
}

// SettleOrders moves the given order numbers from unpaid to paid and
// stamps the order rows. NotFound when none of the numbers are in the
// unpaid bucket, so a second settlement of the same ids fails without
// touching state.
func (s *LedgerService) SettleOrders(roomNumber string, orderNumbers []string, paymentMode string) error {
	if len(orderNumbers) == 0 {
		return apperrors.NewValidation("no order numbers given")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, roomNumber)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&models.LedgerEntry{}).
			Where("room_account_id = ? AND kind = ? AND ref_no IN ? AND status = ?",
				account.ID, models.EntryKindOrder, orderNumbers, models.EntryUnpaid).
			Updates(map[string]interface{}{
				"status":       models.EntryPaid,
				"payment_mode": paymentMode,
				"paid_at":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if err := settledOrNotFound(res.RowsAffected, "unpaid orders for room "+roomNumber); err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).
			Where("order_number IN ? AND payment_status = ?", orderNumbers, models.PaymentPending).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentPaid,
				"payment_method": paymentMode,
				"paid_at":        now,
			}).Error; err != nil {
			return err
		}
		return nil
	})
	return translateTxErr(txErr)
}

// SettleInvoice moves one invoice from unpaid to paid, stamping the
// payment mode on both the ledger entry and the invoice row.
func (s *LedgerService) SettleInvoice(roomNumber, invoiceNo, paymentMode string) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, roomNumber)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&models.LedgerEntry{}).
			Where("room_account_id = ? AND kind = ? AND ref_no = ? AND status = ?",
				account.ID, models.EntryKindInvoice, invoiceNo, models.EntryUnpaid).
			Updates(map[string]interface{}{
				"status":       models.EntryPaid,
				"payment_mode": paymentMode,
				"paid_at":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if err := settledOrNotFound(res.RowsAffected, "unpaid invoice "+invoiceNo+" for room "+roomNumber); err != nil {
			return err
		}

		if err := tx.Model(&models.Invoice{}).
			Where("invoice_no = ?", invoiceNo).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentPaid,
				"payment_mode":   paymentMode,
				"paid_amount":    gorm.Expr("total_amount"),
				"due_amount":     0,
				"paid_at":        now,
			}).Error; err != nil {
			return err
		}
		return nil
	})
	return translateTxErr(txErr)
}

// AccountView is the ledger grouped the way the front desk reads it.
type AccountView struct {
	Account            models.RoomAccount   `json:"account"`
	UnpaidOrders       []models.LedgerEntry `json:"unpaidOrders"`
	PaidOrders         []models.LedgerEntry `json:"paidOrders"`
	UnpaidRoomInvoices []models.LedgerEntry `json:"unpaidRoomInvoices"`
	PaidRoomInvoices   []models.LedgerEntry `json:"paidRoomInvoices"`
}

// GroupEntries splits ledger entries into the four buckets.
func GroupEntries(entries []models.LedgerEntry) (unpaidOrders, paidOrders, unpaidInvoices, paidInvoices []models.LedgerEntry) {
	unpaidOrders = []models.LedgerEntry{}
	paidOrders = []models.LedgerEntry{}
	unpaidInvoices = []models.LedgerEntry{}
	paidInvoices = []models.LedgerEntry{}
	for _, e := range entries {
		switch {
		case e.Kind == models.EntryKindOrder && e.Status == models.EntryUnpaid:
			unpaidOrders = append(unpaidOrders, e)
		case e.Kind == models.EntryKindOrder:
			paidOrders = append(paidOrders, e)
		case e.Status == models.EntryUnpaid:
			unpaidInvoices = append(unpaidInvoices, e)
		default:
			paidInvoices = append(paidInvoices, e)
		}
	}
	return
}

// Account returns the most recent account for a room with its grouped
// ledger. Prefers the checked-in account, falling back to the latest
// historical one.
func (s *LedgerService) Account(roomNumber string) (*AccountView, error) {
	var account models.RoomAccount
	err := s.DB.
		Preload("Entries").
		Where("room_number = ? AND status = ?", roomNumber, models.AccountCheckedIn).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.
			Preload("Entries").
			Where("room_number = ?", roomNumber).
			Order("id DESC").
			First(&account).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("account for room " + roomNumber)
		}
		return nil, err
	}

	view := &AccountView{Account: account}
	view.UnpaidOrders, view.PaidOrders, view.UnpaidRoomInvoices, view.PaidRoomInvoices = GroupEntries(account.Entries)
	return view, nil
}

// ListAccounts returns accounts, optionally filtered by status.
func (s *LedgerService) ListAccounts(status string) ([]models.RoomAccount, error) {
	var accounts []models.RoomAccount
	q := s.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
