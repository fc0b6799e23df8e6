package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops-backend/apperrors"
	"hotelops-backend/models"
)

func validOrderInput() CreateOrderInput {
	price := 120.0
	return CreateOrderInput{
		OrderType:     OrderTypeDineIn,
		CustomerName:  "Walk In",
		PaymentMethod: models.PayCash,
		Items: []OrderItemInput{
			{Name: "Masala Dosa", UnitPrice: &price, Quantity: 2},
		},
	}
}

func TestValidateOrderInput(t *testing.T) {
	require.NoError(t, ValidateOrderInput(validOrderInput()))

	cases := []struct {
		name  string
		tweak func(*CreateOrderInput)
	}{
		{"empty items", func(in *CreateOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{"no name or price without menu id", func(in *CreateOrderInput) {
			in.Items[0].Name = ""
			in.Items[0].UnitPrice = nil
		}},
		{"room service without room number", func(in *CreateOrderInput) {
			in.OrderType = OrderTypeRoomService
		}},
		{"pay-at-hotel without room number", func(in *CreateOrderInput) {
			in.PaymentMethod = models.PayAtHotel
		}},
		{"room service without guest name", func(in *CreateOrderInput) {
			in.OrderType = OrderTypeRoomService
			in.RoomNumber = "101"
			in.CustomerName = ""
		}},
	}

	for _, tc := range cases {
		in := validOrderInput()
		tc.tweak(&in)
		err := ValidateOrderInput(in)
		require.Error(t, err, tc.name)
		assert.True(t, apperrors.IsValidation(err), tc.name)
	}
}

func TestValidateOrderInput_MenuItemOnlyLine(t *testing.T) {
	id := uint(7)
	in := validOrderInput()
	in.Items = []OrderItemInput{{MenuItemID: &id, Quantity: 1}}
	assert.NoError(t, ValidateOrderInput(in))
}

func TestIsPrepaid(t *testing.T) {
	assert.True(t, IsPrepaid(models.PayOnline))
	assert.True(t, IsPrepaid(models.PayCash))
	assert.True(t, IsPrepaid(models.PayCard))
	assert.False(t, IsPrepaid(models.PayAtHotel))
	assert.False(t, IsPrepaid(""))
}

func TestCanTransitionOrder(t *testing.T) {
	allowed := [][2]string{
		{models.OrderPending, models.OrderPreparing},
		{models.OrderPending, models.OrderCancelled},
		{models.OrderPreparing, models.OrderReady},
		{models.OrderPreparing, models.OrderCancelled},
		{models.OrderReady, models.OrderCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransitionOrder(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]string{
		{models.OrderPending, models.OrderCompleted},
		{models.OrderReady, models.OrderCancelled},
		{models.OrderCompleted, models.OrderPending},
		{models.OrderCancelled, models.OrderPreparing},
		{models.OrderCompleted, models.OrderCompleted},
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransitionOrder(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}
