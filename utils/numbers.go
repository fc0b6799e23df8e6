package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const digitCharset = "0123456789"

// GenerateDigits returns n random decimal digits. Uses crypto/rand +
// math/big to avoid modulo bias.
func GenerateDigits(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(digitCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(digitCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateInvoiceNo builds "<PREFIX>-<YYYYMMDD>-<NNNN>". Uniqueness is
// enforced by the invoices table; callers retry on collision.
func GenerateInvoiceNo(prefix string, at time.Time) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", errors.New("empty invoice prefix")
	}
	suffix, err := GenerateDigits(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, at.Format("20060102"), suffix), nil
}

// GenerateOrderNo builds "ORD-<unix timestamp>-<NNNN>".
func GenerateOrderNo(at time.Time) (string, error) {
	suffix, err := GenerateDigits(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%s", at.Unix(), suffix), nil
}

var invoiceNoPattern = regexp.MustCompile(`^[A-Z]+-\d{8}-\d{4}$`)

// IsValidInvoiceNoFormat checks "PREFIX-YYYYMMDD-NNNN".
func IsValidInvoiceNoFormat(no string) bool {
	return invoiceNoPattern.MatchString(strings.TrimSpace(no))
}
