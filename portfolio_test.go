package moneybook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPortfolio_SetOverwrites(t *testing.T) {
	p := NewPortfolio("My Portfolio")
	p.Set("Stocks", d("5000"))
	p.Set("Stocks", d("1234.56"))

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	amount, ok := p.Amount("Stocks")
	if !ok || !amount.Equal(d("1234.56")) {
		t.Errorf("Amount(Stocks) = %v, %v, want 1234.56, true", amount, ok)
	}
}

func TestPortfolio_Grow(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		rate  string
		want  string
	}{
		{name: "ten percent growth", start: "5000", rate: "0.10", want: "5500"},
		{name: "negative rate shrinks", start: "5000", rate: "-0.10", want: "4500"},
		{name: "zero rate", start: "5000", rate: "0", want: "5000"},
		{name: "fractional amount", start: "333.33", rate: "0.5", want: "499.995"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio("test")
			p.Set("Stocks", d(tc.start))

			got, err := p.Grow("Stocks", d(tc.rate))
			if err != nil {
				t.Fatalf("Grow() unexpected error: %v", err)
			}
			if !got.Equal(d(tc.want)) {
				t.Errorf("Grow(%s, %s) = %v, want %s", tc.start, tc.rate, got, tc.want)
			}
			// The stored amount is updated in place.
			if stored, _ := p.Amount("Stocks"); !stored.Equal(d(tc.want)) {
				t.Errorf("stored amount = %v, want %s", stored, tc.want)
			}
		})
	}
}

func TestPortfolio_GrowCompounds(t *testing.T) {
	p := NewPortfolio("test")
	p.Set("Stocks", d("5000"))

	first, err := p.Grow("Stocks", d("0.10"))
	if err != nil {
		t.Fatalf("first Grow() unexpected error: %v", err)
	}
	if !first.Equal(d("5500")) {
		t.Errorf("first Grow() = %v, want 5500", first)
	}

	second, err := p.Grow("Stocks", d("0.10"))
	if err != nil {
		t.Fatalf("second Grow() unexpected error: %v", err)
	}
	if !second.Equal(d("6050")) {
		t.Errorf("second Grow() = %v, want 6050", second)
	}
}

func TestPortfolio_GrowUnknownAsset(t *testing.T) {
	p := NewPortfolio("test")
	p.Set("Stocks", d("5000"))

	_, err := p.Grow("Bonds", d("0.10"))
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Grow(Bonds) error = %v, want ErrAssetNotFound", err)
	}
	// The portfolio is unchanged.
	if amount, _ := p.Amount("Stocks"); !amount.Equal(d("5000")) {
		t.Errorf("Amount(Stocks) = %v, want 5000", amount)
	}
}

func TestPortfolio_RemoveAbsentIsNoop(t *testing.T) {
	p := NewPortfolio("test")
	p.Set("Stocks", d("5000"))

	p.Remove("Bonds")

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	p.Remove("Stocks")
	if p.Len() != 0 {
		t.Errorf("Len() after removing Stocks = %d, want 0", p.Len())
	}
}

func TestPortfolio_AssetsSorted(t *testing.T) {
	p := NewPortfolio("test")
	p.Set("Gold", d("10"))
	p.Set("Bonds", d("20"))
	p.Set("Stocks", d("30"))

	var names []string
	var amounts []decimal.Decimal
	for name, amount := range p.Assets() {
		names = append(names, name)
		amounts = append(amounts, amount)
	}

	wantNames := []string{"Bonds", "Gold", "Stocks"}
	if len(names) != len(wantNames) {
		t.Fatalf("got %d assets, want %d", len(names), len(wantNames))
	}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want)
		}
	}
	if !amounts[0].Equal(d("20")) {
		t.Errorf("amounts[0] = %v, want 20", amounts[0])
	}
}
