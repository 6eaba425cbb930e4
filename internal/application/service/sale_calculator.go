package service

import (
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleTotals holds the order-level aggregates computed from a sale's line
// items. Subtotal and TaxTotal are each rounded to cents; Total is rounded
// from the unrounded running sums, so it can differ from Subtotal+TaxTotal
// by at most one cent.
type SaleTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxTotal decimal.Decimal `json:"tax_total"`
	Total    decimal.Decimal `json:"total"`
}

var one = decimal.NewFromInt(1)

// CalculateTotals computes per-line and order-level amounts for the given
// tax rate and line items, in input order. It is a pure function over
// already-sanitized input: prices are non-negative, quantities at least 1
// and the rate within [0,1] (see NormalizeTaxRate and SanitizeLineItem).
//
// Per line: lineSubtotal = unitPrice*quantity and lineTax =
// lineSubtotal*rate for taxable lines, both kept at full precision. The
// running sums are accumulated unrounded and only the three order-level
// aggregates are rounded to cents, half away from zero, so rounding error
// never compounds across lines.
func CalculateTotals(taxRate decimal.Decimal, items []entity.SaleLineItem) (SaleTotals, []entity.SaleLineItem) {
	var subtotalAcc, taxAcc decimal.Decimal

	out := make([]entity.SaleLineItem, len(items))
	for i, item := range items {
		item.LineSubtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if item.Taxable {
			item.LineTax = item.LineSubtotal.Mul(taxRate)
		} else {
			item.LineTax = decimal.Zero
		}
		item.LineTotal = item.LineSubtotal.Add(item.LineTax)
		item.Position = i

		subtotalAcc = subtotalAcc.Add(item.LineSubtotal)
		taxAcc = taxAcc.Add(item.LineTax)
		out[i] = item
	}

	return SaleTotals{
		Subtotal: subtotalAcc.Round(2),
		TaxTotal: taxAcc.Round(2),
		Total:    subtotalAcc.Add(taxAcc).Round(2),
	}, out
}

// NormalizeTaxRate maps a submitted rate onto the usable range. A missing
// or negative rate falls back to the configured default; rates above 1 are
// clamped to 1. Invalid input is never an error.
func NormalizeTaxRate(rate *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if rate == nil || rate.IsNegative() {
		return fallback
	}
	if rate.GreaterThan(one) {
		return one
	}
	return *rate
}

// SanitizeLineItem coerces a line item's numeric fields into the ranges
// CalculateTotals assumes: negative prices become 0 and quantities below 1
// become 1.
func SanitizeLineItem(item entity.SaleLineItem) entity.SaleLineItem {
	if item.UnitPrice.IsNegative() {
		item.UnitPrice = decimal.Zero
	}
	if item.UnitCost.IsNegative() {
		item.UnitCost = decimal.Zero
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return item
}
