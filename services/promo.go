package services

import "math"

// PromoPolicy decides the discount for a promo code against a booking
// amount. The backing store is pluggable; the default is a fixed table.
type PromoPolicy interface {
	Discount(code string, amount float64) (float64, bool)
}

type promoRule struct {
	percent float64
	flat    float64
}

type TablePromoPolicy struct {
	rules map[string]promoRule
}

func NewDefaultPromoPolicy() *TablePromoPolicy {
	return &TablePromoPolicy{
		rules: map[string]promoRule{
			"WELCOME10": {percent: 0.10},
			"SUMMER25":  {percent: 0.25},
			"FLAT50":    {flat: 50},
		},
	}
}

func (p *TablePromoPolicy) Discount(code string, amount float64) (float64, bool) {
	rule, ok := p.rules[code]
	if !ok {
		return 0, false
	}

	discount := rule.flat
	if rule.percent > 0 {
		discount = amount * rule.percent
	}
	if discount > amount {
		discount = amount
	}
	return math.Round(discount*100) / 100, true
}
