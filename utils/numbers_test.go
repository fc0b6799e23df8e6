package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceNo_Format(t *testing.T) {
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	no, err := GenerateInvoiceNo("HMD", at)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(no, "HMD-20260315-"), no)
	assert.True(t, IsValidInvoiceNoFormat(no), no)
}

func TestGenerateInvoiceNo_NormalizesPrefix(t *testing.T) {
	no, err := GenerateInvoiceNo(" inv ", time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(no, "INV-"), no)
}

func TestGenerateInvoiceNo_EmptyPrefix(t *testing.T) {
	_, err := GenerateInvoiceNo("  ", time.Now())
	assert.Error(t, err)
}

func TestGenerateOrderNo(t *testing.T) {
	at := time.Unix(1767225600, 0) // 2026-01-01 UTC
	no, err := GenerateOrderNo(at)
	require.NoError(t, err)

	parts := strings.Split(no, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])
	assert.Equal(t, "1767225600", parts[1])
	assert.Len(t, parts[2], 4)
}

func TestGenerateDigits(t *testing.T) {
	s, err := GenerateDigits(6)
	require.NoError(t, err)
	require.Len(t, s, 6)
	for _, r := range s {
		assert.True(t, r >= '0' && r <= '9')
	}

	_, err = GenerateDigits(0)
	assert.Error(t, err)
}

func TestIsValidInvoiceNoFormat(t *testing.T) {
	valid := []string{"HMD-20260315-0042", "INV-19991231-9999", "DFB-20260101-0000"}
	for _, no := range valid {
		assert.True(t, IsValidInvoiceNoFormat(no), no)
	}

	invalid := []string{"", "HMD-2026031-0042", "HMD-20260315-42", "hmd-20260315-0042", "20260315-0042", "HMD-20260315-00425"}
	for _, no := range invalid {
		assert.False(t, IsValidInvoiceNoFormat(no), no)
	}
}
