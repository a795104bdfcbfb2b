package equipment

import (
	"errors"
	"strings"

	"gear-rental/internal/domain/money"
)

var (
	ErrInvalidTierDays  = errors.New("rate tier days must be positive")
	ErrTierLabelEmpty   = errors.New("rate tier label is required")
	ErrTiersOutOfOrder  = errors.New("rate tiers must be strictly ordered by days")
	ErrTooManyRateTiers = errors.New("at most 10 rate tiers are allowed")
)

const maxRateTiers = 10

// RateTier prices a block of whole days, e.g. "1 day", "weekend (3 days)", "week".
type RateTier struct {
	label string
	days  int
	price money.Money
}

func NewRateTier(label string, days int, priceCents int64) (RateTier, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return RateTier{}, ErrTierLabelEmpty
	}
	if days <= 0 {
		return RateTier{}, ErrInvalidTierDays
	}
	price, err := money.New(priceCents)
	if err != nil {
		return RateTier{}, err
	}
	return RateTier{label: label, days: days, price: price}, nil
}

func (t RateTier) Label() string      { return t.label }
func (t RateTier) Days() int          { return t.days }
func (t RateTier) Price() money.Money { return t.price }

// RateCard is an ordered list of tiers, shortest first.
type RateCard []RateTier

func NewRateCard(tiers []RateTier) (RateCard, error) {
	if len(tiers) > maxRateTiers {
		return nil, ErrTooManyRateTiers
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].days <= tiers[i-1].days {
			return nil, ErrTiersOutOfOrder
		}
	}
	card := make(RateCard, len(tiers))
	copy(card, tiers)
	return card, nil
}

// Quote covers days greedily with the longest tier that fits and charges any
// remainder at the shortest tier. An empty card quotes zero.
func (c RateCard) Quote(days int) money.Money {
	total := money.Zero()
	if len(c) == 0 || days <= 0 {
		return total
	}
	remaining := days
	for i := len(c) - 1; i >= 0 && remaining > 0; i-- {
		n := remaining / c[i].days
		if n == 0 {
			continue
		}
		total = total.Add(c[i].price.Times(n))
		remaining -= n * c[i].days
	}
	if remaining > 0 {
		total = total.Add(c[0].price.Times((remaining + c[0].days - 1) / c[0].days))
	}
	return total
}
