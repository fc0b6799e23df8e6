package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

func fl(f float64) *float64 { return &f }

func roomInvoiceInput() CreateInvoiceInput {
	// Matches the worked example: roomCharges 2000, food 200, GST 36,
	// discount 50 → final 2186.
	return CreateInvoiceInput{
		Kind:        models.InvoiceRoom,
		GuestName:   "A Guest",
		RoomNumber:  "101",
		RoomPrice:   1000,
		TotalDays:   2,
		Items:       []InvoiceLineInput{{Name: "Dinner", UnitPrice: 100, Quantity: 2}},
		CGSTAmount:  fl(18),
		SGSTAmount:  fl(18),
		Discount:    50,
		PaymentMode: models.PayToRoom,
	}
}

func TestBuildInvoice_RoomTotals(t *testing.T) {
	inv, err := buildInvoice(roomInvoiceInput(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 2000.0, inv.RoomCharges)
	assert.Equal(t, 200.0, inv.TotalFoodAmount)
	assert.Equal(t, 2200.0, inv.SubTotal)
	assert.Equal(t, 36.0, inv.GSTAmount)
	assert.Equal(t, 2186.0, inv.TotalAmount)
}

func TestBuildInvoice_FoodLineTax(t *testing.T) {
	in := CreateInvoiceInput{
		Kind: models.InvoiceRestaurant,
		Items: []InvoiceLineInput{
			{Name: "Thali", UnitPrice: 150, Quantity: 2, CGSTPercent: fl(2.5), SGSTPercent: fl(2.5)},
			{Name: "Lassi", UnitPrice: 80, Quantity: 1, CGSTAmount: fl(4), SGSTAmount: fl(4)},
		},
		PaymentMode: models.PayCash,
	}

	inv, err := buildInvoice(in, time.Now().UTC())
	require.NoError(t, err)

	require.Len(t, inv.Items, 2)
	// 300 × 2.5% twice = 15
	assert.Equal(t, 15.0, inv.Items[0].TaxAmount)
	// fixed 4 + 4
	assert.Equal(t, 8.0, inv.Items[1].TaxAmount)

	assert.Equal(t, 380.0, inv.TotalFoodAmount)
	assert.Equal(t, 11.5, inv.CGSTTotal)
	assert.Equal(t, 11.5, inv.SGSTTotal)
	assert.Equal(t, 23.0, inv.GSTAmount)
	assert.Equal(t, 403.0, inv.TotalAmount)
}

func TestBuildInvoice_RejectsBothTaxInputs(t *testing.T) {
	in := roomInvoiceInput()
	in.CGSTPercent = fl(9)

	_, err := buildInvoice(in, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBuildInvoice_LineLevelBothTaxInputs(t *testing.T) {
	in := CreateInvoiceInput{
		Kind: models.InvoiceDirectFood,
		Items: []InvoiceLineInput{
			{Name: "Snack", UnitPrice: 50, Quantity: 1, SGSTPercent: fl(9), SGSTAmount: fl(4.5)},
		},
		PaymentMode: models.PayCash,
	}

	_, err := buildInvoice(in, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyPaymentPolicy(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		mode       string
		wantStatus string
		wantPaid   float64
		wantDue    float64
	}{
		{models.PayToRoom, models.PaymentPending, 0, 500},
		{models.PayOnline, models.PaymentPending, 0, 500},
		{models.PayCash, models.PaymentPaid, 500, 0},
		{models.PayCard, models.PaymentPaid, 500, 0},
	}

	for _, tc := range cases {
		inv := &models.Invoice{TotalAmount: 500, PaymentMode: tc.mode}
		applyPaymentPolicy(inv, now)
		assert.Equal(t, tc.wantStatus, inv.PaymentStatus, "mode %s", tc.mode)
		assert.Equal(t, tc.wantPaid, inv.PaidAmount, "mode %s", tc.mode)
		assert.Equal(t, tc.wantDue, inv.DueAmount, "mode %s", tc.mode)
		if tc.wantStatus == models.PaymentPaid {
			assert.NotNil(t, inv.PaidAt, "mode %s", tc.mode)
		} else {
			assert.Nil(t, inv.PaidAt, "mode %s", tc.mode)
		}
	}
}

func TestCreateInvoiceInput_Validate(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*CreateInvoiceInput)
	}{
		{"unknown kind", func(in *CreateInvoiceInput) { in.Kind = "storage" }},
		{"room invoice without room number", func(in *CreateInvoiceInput) { in.RoomNumber = "" }},
		{"room invoice without days", func(in *CreateInvoiceInput) { in.TotalDays = 0 }},
		{"negative room price", func(in *CreateInvoiceInput) { in.RoomPrice = -1 }},
		{"zero quantity line", func(in *CreateInvoiceInput) { in.Items[0].Quantity = 0 }},
		{"negative unit price", func(in *CreateInvoiceInput) { in.Items[0].UnitPrice = -5 }},
	}

	for _, tc := range cases {
		in := roomInvoiceInput()
		tc.tweak(&in)
		err := in.validate()
		require.Error(t, err, tc.name)
		assert.True(t, apperrors.IsValidation(err), tc.name)
	}

	t.Run("food invoice requires items", func(t *testing.T) {
		in := CreateInvoiceInput{Kind: models.InvoiceManagement, PaymentMode: models.PayCash}
		err := in.validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("room-billed invoice requires room number", func(t *testing.T) {
		in := CreateInvoiceInput{
			Kind:        models.InvoiceRestaurant,
			Items:       []InvoiceLineInput{{Name: "Tea", UnitPrice: 20, Quantity: 1}},
			PaymentMode: models.PayToRoom,
		}
		err := in.validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}
