package moneybook

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// ErrAssetNotFound reports an operation on an asset the portfolio does not hold.
var ErrAssetNotFound = errors.New("asset not found")

// Portfolio maps asset names to their current monetary amount.
//
// Asset names are unique keys: setting an asset overwrites any prior
// amount, there is no accumulation.
type Portfolio struct {
	name   string
	assets map[string]decimal.Decimal
}

// NewPortfolio creates an empty named portfolio.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{name: name, assets: make(map[string]decimal.Decimal)}
}

// Name returns the portfolio's name.
func (p *Portfolio) Name() string { return p.name }

// Set records the current amount for an asset, overwriting any prior value.
func (p *Portfolio) Set(asset string, amount decimal.Decimal) {
	p.assets[asset] = amount
}

// Remove deletes an asset from the portfolio.
// Removing an absent asset is a no-op.
func (p *Portfolio) Remove(asset string) {
	delete(p.assets, asset)
}

// Amount returns the stored amount for an asset, and whether the asset is held.
func (p *Portfolio) Amount(asset string) (decimal.Decimal, bool) {
	amount, ok := p.assets[asset]
	return amount, ok
}

// Len returns the number of assets held.
func (p *Portfolio) Len() int { return len(p.assets) }

// Grow applies a fractional growth rate to an asset in place and returns the
// new amount. A rate of 0.10 grows the amount by 10%; negative rates shrink
// it. Growing an asset the portfolio does not hold returns ErrAssetNotFound.
func (p *Portfolio) Grow(asset string, rate decimal.Decimal) (decimal.Decimal, error) {
	amount, ok := p.assets[asset]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("cannot grow %q: %w", asset, ErrAssetNotFound)
	}
	amount = amount.Mul(decimal.NewFromInt(1).Add(rate))
	p.assets[asset] = amount
	return amount, nil
}

// Assets iterates over assets and their amounts in sorted asset order.
func (p *Portfolio) Assets() iter.Seq2[string, decimal.Decimal] {
	return func(yield func(string, decimal.Decimal) bool) {
		names := slices.Collect(maps.Keys(p.assets))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name, p.assets[name]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the asset mapping.
func (p *Portfolio) Snapshot() map[string]decimal.Decimal {
	return maps.Clone(p.assets)
}
