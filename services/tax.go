package services

import (
	"github.com/shopspring/decimal"

	"hotelops-backend/apperrors"
)

// ComputeTax resolves one GST component (CGST or SGST) for a base
// amount. Percent and amount are mutually exclusive inputs: supplying
// both non-zero is a validation error. With neither set the component
// is zero. Percent-based tax is rounded half-up to 2 decimal places;
// amount-based tax passes through unchanged.
func ComputeTax(base decimal.Decimal, percent, amount *decimal.Decimal) (decimal.Decimal, error) {
	percentSet := percent != nil && !percent.IsZero()
	amountSet := amount != nil && !amount.IsZero()

	if percentSet && amountSet {
		return decimal.Zero, apperrors.NewValidation("tax percent and tax amount are mutually exclusive")
	}
	if percentSet {
		return base.Mul(*percent).Div(decimal.NewFromInt(100)).Round(2), nil
	}
	if amountSet {
		return *amount, nil
	}
	return decimal.Zero, nil
}

// ComputeLineTax applies ComputeTax independently for the CGST and SGST
// pairs of one line and returns both component amounts.
func ComputeLineTax(base decimal.Decimal, cgstPercent, cgstAmount, sgstPercent, sgstAmount *decimal.Decimal) (cgst, sgst decimal.Decimal, err error) {
	cgst, err = ComputeTax(base, cgstPercent, cgstAmount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	sgst, err = ComputeTax(base, sgstPercent, sgstAmount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return cgst, sgst, nil
}

// decPtr converts an optional float64 into an optional decimal.
func decPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// money rounds a decimal to 2 places and converts it to float64 for
// persistence. All accumulation happens in decimal; this is the I/O
// boundary.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
