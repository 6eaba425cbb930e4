package service

import (
	"testing"

	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(price string, qty int, taxable bool) entity.SaleLineItem {
	return entity.SaleLineItem{
		Name:      "test item",
		UnitPrice: dec(price),
		Quantity:  qty,
		Taxable:   taxable,
	}
}

func TestCalculateTotalsSingleTaxableItem(t *testing.T) {
	totals, items := CalculateTotals(dec("0.0625"), []entity.SaleLineItem{
		item("10.00", 2, true),
	})

	require.Len(t, items, 1)
	assert.True(t, dec("20").Equal(items[0].LineSubtotal), "line subtotal: %s", items[0].LineSubtotal)
	assert.True(t, dec("1.25").Equal(items[0].LineTax))
	assert.True(t, dec("21.25").Equal(items[0].LineTotal))

	assert.True(t, dec("20.00").Equal(totals.Subtotal))
	assert.True(t, dec("1.25").Equal(totals.TaxTotal))
	assert.True(t, dec("21.25").Equal(totals.Total))
}

func TestCalculateTotalsMixedItems(t *testing.T) {
	totals, items := CalculateTotals(dec("0.08"), []entity.SaleLineItem{
		item("5.00", 3, true),
		item("2.50", 1, false),
	})

	require.Len(t, items, 2)
	assert.True(t, dec("15").Equal(items[0].LineSubtotal))
	assert.True(t, dec("1.2").Equal(items[0].LineTax))
	assert.True(t, decimal.Zero.Equal(items[1].LineTax), "non-taxable line gets no tax")

	assert.True(t, dec("17.50").Equal(totals.Subtotal))
	assert.True(t, dec("1.20").Equal(totals.TaxTotal))
	assert.True(t, dec("18.70").Equal(totals.Total))
}

func TestCalculateTotalsPositionsFollowInputOrder(t *testing.T) {
	_, items := CalculateTotals(decimal.Zero, []entity.SaleLineItem{
		item("1.00", 1, true),
		item("2.00", 1, true),
		item("3.00", 1, true),
	})

	for i, it := range items {
		assert.Equal(t, i, it.Position)
	}
}

func TestCalculateTotalsLineValuesStayUnrounded(t *testing.T) {
	// 3 * 3.333 * 0.0625 = 0.6249375; the line keeps full precision.
	_, items := CalculateTotals(dec("0.0625"), []entity.SaleLineItem{
		item("3.333", 3, true),
	})

	require.Len(t, items, 1)
	assert.True(t, dec("9.999").Equal(items[0].LineSubtotal))
	assert.True(t, dec("0.6249375").Equal(items[0].LineTax))
	assert.True(t, dec("10.6239375").Equal(items[0].LineTotal))
}

func TestCalculateTotalsRoundsOnceAtOrderLevel(t *testing.T) {
	// Each line's tax is 0.0260625; summing five lines before rounding
	// gives 0.1303125 -> 0.13. Rounding per line first would give 0.15.
	items := make([]entity.SaleLineItem, 5)
	for i := range items {
		items[i] = item("0.417", 1, true)
	}

	totals, _ := CalculateTotals(dec("0.0625"), items)
	assert.True(t, dec("2.09").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
	assert.True(t, dec("0.13").Equal(totals.TaxTotal), "tax: %s", totals.TaxTotal)
}

func TestCalculateTotalsTotalFromUnroundedSums(t *testing.T) {
	// Subtotal rounds up and tax rounds up independently, but the total is
	// rounded from the unrounded sum, so it may differ from
	// round(subtotal)+round(tax) by one cent.
	totals, _ := CalculateTotals(dec("0.0625"), []entity.SaleLineItem{
		item("0.075", 1, true),
	})

	assert.True(t, dec("0.08").Equal(totals.Subtotal))
	assert.True(t, dec("0.00").Equal(totals.TaxTotal))
	// 0.075 + 0.0046875 = 0.0796875 -> 0.08, not 0.08 + 0.00 recombined
	assert.True(t, dec("0.08").Equal(totals.Total))
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	input := []entity.SaleLineItem{
		item("19.99", 3, true),
		item("5.00", 2, false),
	}

	totals1, items1 := CalculateTotals(dec("0.0625"), input)
	totals2, items2 := CalculateTotals(dec("0.0625"), items1)

	assert.True(t, totals1.Subtotal.Equal(totals2.Subtotal))
	assert.True(t, totals1.TaxTotal.Equal(totals2.TaxTotal))
	assert.True(t, totals1.Total.Equal(totals2.Total))
	for i := range items1 {
		assert.True(t, items1[i].LineTotal.Equal(items2[i].LineTotal))
	}
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	totals, items := CalculateTotals(dec("0.0625"), nil)
	assert.Empty(t, items)
	assert.True(t, decimal.Zero.Equal(totals.Subtotal))
	assert.True(t, decimal.Zero.Equal(totals.TaxTotal))
	assert.True(t, decimal.Zero.Equal(totals.Total))
}

func TestNormalizeTaxRate(t *testing.T) {
	fallback := dec("0.0625")

	assert.True(t, fallback.Equal(NormalizeTaxRate(nil, fallback)), "missing rate uses fallback")

	neg := dec("-0.1")
	assert.True(t, fallback.Equal(NormalizeTaxRate(&neg, fallback)), "negative rate uses fallback")

	high := dec("1.5")
	assert.True(t, dec("1").Equal(NormalizeTaxRate(&high, fallback)), "rates above 1 clamp to 1")

	zero := decimal.Zero
	assert.True(t, decimal.Zero.Equal(NormalizeTaxRate(&zero, fallback)), "zero is a valid rate")

	valid := dec("0.08")
	assert.True(t, valid.Equal(NormalizeTaxRate(&valid, fallback)))
}

func TestSanitizeLineItem(t *testing.T) {
	got := SanitizeLineItem(entity.SaleLineItem{
		UnitPrice: dec("-5"),
		UnitCost:  dec("-1"),
		Quantity:  0,
	})
	assert.True(t, decimal.Zero.Equal(got.UnitPrice))
	assert.True(t, decimal.Zero.Equal(got.UnitCost))
	assert.Equal(t, 1, got.Quantity)

	ok := SanitizeLineItem(item("9.99", 4, true))
	assert.True(t, dec("9.99").Equal(ok.UnitPrice))
	assert.Equal(t, 4, ok.Quantity)
}
