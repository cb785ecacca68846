package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajiloprint/press-api/internal/domain/billing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute_DiscountBeforeVAT(t *testing.T) {
	lines := []billing.Line{
		{Quantity: d("1000"), Rate: d("2.50")}, // 2500
		{Quantity: d("200"), Rate: d("5")},     // 1000
	}
	got := billing.Compute(lines, d("500"), d("13"))

	assert.True(t, got.Subtotal.Equal(d("3500")), "subtotal %s", got.Subtotal)
	// VAT on (3500 - 500), not on 3500.
	assert.True(t, got.VATAmount.Equal(d("390")), "vat %s", got.VATAmount)
	assert.True(t, got.GrandTotal.Equal(d("3390")), "grand total %s", got.GrandTotal)
}

func TestCompute_DiscountLargerThanSubtotal(t *testing.T) {
	lines := []billing.Line{{Quantity: d("10"), Rate: d("10")}}
	got := billing.Compute(lines, d("500"), d("13"))

	assert.True(t, got.VATAmount.IsZero())
	assert.True(t, got.GrandTotal.IsZero())
	assert.True(t, got.Subtotal.Equal(d("100")))
}

func TestCompute_NegativeDiscountIgnored(t *testing.T) {
	lines := []billing.Line{{Quantity: d("10"), Rate: d("10")}}
	got := billing.Compute(lines, d("-50"), d("0"))

	assert.True(t, got.Discount.IsZero())
	assert.True(t, got.GrandTotal.Equal(d("100")))
}

func TestCompute_Rounding(t *testing.T) {
	lines := []billing.Line{{Quantity: d("3"), Rate: d("33.333")}}
	got := billing.Compute(lines, decimal.Zero, d("13"))

	assert.True(t, got.Subtotal.Equal(d("100.00")), "subtotal %s", got.Subtotal)
	assert.True(t, got.VATAmount.Equal(d("13.00")), "vat %s", got.VATAmount)
	assert.True(t, got.GrandTotal.Equal(d("113.00")), "grand total %s", got.GrandTotal)
}

func TestCompute_NoLines(t *testing.T) {
	got := billing.Compute(nil, decimal.Zero, d("13"))
	assert.True(t, got.GrandTotal.IsZero())
}
