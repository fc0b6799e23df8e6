package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops-backend/apperrors"
)

func dec(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestComputeTax_Percent(t *testing.T) {
	got, err := ComputeTax(decimal.NewFromInt(100), dec(18), nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(18)), "18%% of 100 should be 18, got %s", got)
}

func TestComputeTax_Amount(t *testing.T) {
	got, err := ComputeTax(decimal.NewFromInt(100), nil, dec(18))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(18)))
}

func TestComputeTax_NeitherSet(t *testing.T) {
	got, err := ComputeTax(decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestComputeTax_ZeroValuesCountAsUnset(t *testing.T) {
	got, err := ComputeTax(decimal.NewFromInt(100), dec(0), dec(0))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestComputeTax_BothSetFails(t *testing.T) {
	_, err := ComputeTax(decimal.NewFromInt(100), dec(9), dec(9))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestComputeTax_RoundsHalfUp(t *testing.T) {
	// 10 × 12.25% = 1.225 → 1.23
	got, err := ComputeTax(decimal.NewFromInt(10), dec(12.25), nil)
	require.NoError(t, err)
	assert.Equal(t, "1.23", got.StringFixed(2))
}

func TestComputeTax_AmountPassesThroughUnrounded(t *testing.T) {
	got, err := ComputeTax(decimal.NewFromInt(100), nil, dec(18.555))
	require.NoError(t, err)
	assert.Equal(t, "18.555", got.String())
}

func TestComputeLineTax_ComponentsAreIndependent(t *testing.T) {
	base := decimal.NewFromInt(200)
	cgst, sgst, err := ComputeLineTax(base, dec(2.5), nil, nil, dec(7))
	require.NoError(t, err)
	assert.Equal(t, "5.00", cgst.StringFixed(2))
	assert.Equal(t, "7.00", sgst.StringFixed(2))
}

func TestComputeLineTax_BothPairsSetFails(t *testing.T) {
	base := decimal.NewFromInt(200)
	_, _, err := ComputeLineTax(base, nil, nil, dec(9), dec(18))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestMoney_RoundsAtBoundary(t *testing.T) {
	d := decimal.NewFromFloat(10.005)
	assert.Equal(t, 10.01, money(d))
}
