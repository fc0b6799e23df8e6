package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"

	"hotelops-backend/apperrors"
)

// translateTxErr keeps typed errors intact and wraps anything else as a
// retryable transaction failure: an aborted gorm transaction leaves no
// partial state, so the caller may retry the whole operation.
func translateTxErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.NewTransaction(err)
}

// isDuplicateErr detects a unique-key violation. Checks the driver
// error code first, falling back to message sniffing the way older
// call sites did.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique constraint")
}
