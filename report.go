package moneybook

import "github.com/shopspring/decimal"

// Report is a day-filtered view over the book's income, expense and
// transaction entries, plus the full portfolio.
type Report struct {
	Range        Range
	Income       []IncomeEntry
	Expenses     []ExpenseEntry
	Transactions []TransactionEntry
	Investments  map[string]decimal.Decimal
}

// BuildReport collects the entries whose day falls in [from, to],
// boundaries included. Days compare as strings, so only ISO-formatted
// days order correctly. The portfolio is reported whole, never filtered
// by day. An inverted range is not an error: it simply yields empty
// collections and the unfiltered portfolio.
func (b *Book) BuildReport(from, to Day) Report {
	r := Report{
		Range:        NewRange(from, to),
		Income:       make([]IncomeEntry, 0),
		Expenses:     make([]ExpenseEntry, 0),
		Transactions: make([]TransactionEntry, 0),
		Investments:  b.portfolio.Snapshot(),
	}
	for _, e := range b.income {
		if r.Range.Contains(e.Date) {
			r.Income = append(r.Income, e)
		}
	}
	for _, e := range b.expenses {
		if r.Range.Contains(e.Date) {
			r.Expenses = append(r.Expenses, e)
		}
	}
	for _, e := range b.transactions {
		if r.Range.Contains(e.Date) {
			r.Transactions = append(r.Transactions, e)
		}
	}
	return r
}
