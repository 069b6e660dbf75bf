package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Price is one effective-dated price row for a product. History is append
// only: a price change inserts a new row with a later effective date, it never
// mutates an existing one.
type Price struct {
	PartNumber    string
	EffectiveDate civil.Date
	Currency      string
	List          *Money
	Retail        *Money
	Discount      *Money
	Cost          *Money
	CreatedAt     time.Time
}

// SelectEffectivePrice picks the single effective price row: the row with the
// greatest EffectiveDate <= asOf, or the globally latest row when asOf is nil.
// When several rows share the winning date (the store's uniqueness rule should
// prevent it, but the selection must not assume it) the greatest CreatedAt
// wins. Pure function of its inputs; input order does not matter.
func SelectEffectivePrice(prices []Price, asOf *civil.Date) (*Price, error) {
	var best *Price
	for i := range prices {
		p := &prices[i]
		if asOf != nil && p.EffectiveDate.After(*asOf) {
			continue
		}
		if best == nil || betterPrice(p, best) {
			best = p
		}
	}
	if best == nil {
		return nil, ErrNoPrice
	}
	out := *best
	return &out, nil
}

// betterPrice reports whether a should be selected over b.
func betterPrice(a, b *Price) bool {
	if a.EffectiveDate != b.EffectiveDate {
		return a.EffectiveDate.After(b.EffectiveDate)
	}
	return a.CreatedAt.After(b.CreatedAt)
}
