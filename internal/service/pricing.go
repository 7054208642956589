package service

import (
	"sync/atomic"

	"inspection-billing/internal/core/domain"
	"inspection-billing/pkg/apperror"
)

// PriceTable is one consistent set of prices.
type PriceTable struct {
	ReportFee    domain.Money
	PricePerUnit domain.Money
}

// Total returns reportFee + pricePerUnit * unitCount.
func (t PriceTable) Total(unitCount int) (domain.Money, error) {
	if unitCount <= 0 {
		return 0, apperror.ErrInvalidArgument("unit count must be at least 1")
	}
	return t.ReportFee + t.PricePerUnit*domain.Money(unitCount), nil
}

// Pricing hands out the current PriceTable. Swaps are atomic so an intent
// always prices against a single snapshot.
type Pricing struct {
	table atomic.Pointer[PriceTable]
}

// NewPricing creates a Pricing seeded with the given prices.
func NewPricing(reportFee, pricePerUnit domain.Money) *Pricing {
	p := &Pricing{}
	p.Update(reportFee, pricePerUnit)
	return p
}

// Snapshot returns the table in effect right now.
func (p *Pricing) Snapshot() PriceTable {
	return *p.table.Load()
}

// Update replaces the table. Existing intents keep their frozen amounts.
func (p *Pricing) Update(reportFee, pricePerUnit domain.Money) {
	p.table.Store(&PriceTable{ReportFee: reportFee, PricePerUnit: pricePerUnit})
}
