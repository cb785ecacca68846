// Package billing implements the sequential discount-then-VAT arithmetic
// shared by quotations and estimates. All amounts are decimals; VAT applies
// to the discounted subtotal, never the raw one.
package billing

import "github.com/shopspring/decimal"

// Line is one priced row: quantity × rate.
type Line struct {
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// Totals is the computed money breakdown of a document.
type Totals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	VATAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Amount returns the line total.
func (l Line) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.Rate)
}

// Compute applies the document arithmetic: sum the lines, subtract the
// absolute discount (floored at zero), then add VAT at vatRate percent.
// Monetary results are rounded to two decimal places.
func Compute(lines []Line, discount, vatRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Amount())
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	discounted := subtotal.Sub(discount)
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}
	vat := discounted.Mul(vatRate).Div(hundred).Round(2)
	return Totals{
		Subtotal:   subtotal.Round(2),
		Discount:   discount.Round(2),
		VATAmount:  vat,
		GrandTotal: discounted.Add(vat).Round(2),
	}
}
