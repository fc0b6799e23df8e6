package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

func TestGroupEntries(t *testing.T) {
	entries := []models.LedgerEntry{
		{Kind: models.EntryKindOrder, RefNo: "ORD-1", Status: models.EntryUnpaid},
		{Kind: models.EntryKindOrder, RefNo: "ORD-2", Status: models.EntryPaid},
		{Kind: models.EntryKindInvoice, RefNo: "HMD-20260301-0001", Status: models.EntryUnpaid},
		{Kind: models.EntryKindInvoice, RefNo: "HMD-20260301-0002", Status: models.EntryPaid},
		{Kind: models.EntryKindOrder, RefNo: "ORD-3", Status: models.EntryUnpaid},
	}

	unpaidOrders, paidOrders, unpaidInvoices, paidInvoices := GroupEntries(entries)

	assert.Len(t, unpaidOrders, 2)
	assert.Len(t, paidOrders, 1)
	assert.Len(t, unpaidInvoices, 1)
	assert.Len(t, paidInvoices, 1)
	assert.Equal(t, "ORD-2", paidOrders[0].RefNo)

	// Each ref lands in exactly one bucket.
	seen := map[string]int{}
	for _, bucket := range [][]models.LedgerEntry{unpaidOrders, paidOrders, unpaidInvoices, paidInvoices} {
		for _, e := range bucket {
			seen[e.Kind+"/"+e.RefNo]++
		}
	}
	assert.Len(t, seen, len(entries))
	for ref, n := range seen {
		assert.Equal(t, 1, n, ref)
	}
}

func TestSettledOrNotFound(t *testing.T) {
	// First settlement flips rows, so anything positive passes.
	assert.NoError(t, settledOrNotFound(1, "unpaid orders for room 101"))
	assert.NoError(t, settledOrNotFound(3, "unpaid orders for room 101"))

	// Settling again matches zero unpaid rows and must surface
	// NotFound instead of silently succeeding.
	err := settledOrNotFound(0, "unpaid invoice HMD-20260301-0001 for room 101")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "HMD-20260301-0001")
}

func TestGroupEntries_EmptyBucketsAreNotNil(t *testing.T) {
	unpaidOrders, paidOrders, unpaidInvoices, paidInvoices := GroupEntries(nil)
	assert.NotNil(t, unpaidOrders)
	assert.NotNil(t, paidOrders)
	assert.NotNil(t, unpaidInvoices)
	assert.NotNil(t, paidInvoices)
}
