package moneybook

import "github.com/shopspring/decimal"

// IncomeEntry records money coming in from a named source.
// Entries are never mutated once added.
type IncomeEntry struct {
	Source string          `json:"source"` // Source is the name of the income source (job, etc.).
	Amount decimal.Decimal `json:"amount"` // Amount is the monetary amount of the income.
	Date   Day             `json:"date"`   // Date is the day the income occurred.
}

// MarshalJSON implements the json.Marshaler interface for IncomeEntry.
func (e IncomeEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("source", e.Source)
	w.Append("amount", e.Amount)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// ExpenseEntry records money going out under a named category.
type ExpenseEntry struct {
	Category string          `json:"category"` // Category is the name of the expense category.
	Amount   decimal.Decimal `json:"amount"`   // Amount is the monetary amount of the expense.
	Date     Day             `json:"date"`     // Date is the day the expense occurred.
}

// MarshalJSON implements the json.Marshaler interface for ExpenseEntry.
func (e ExpenseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", e.Category)
	w.Append("amount", e.Amount)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// TransactionEntry is a free-form dated record. It carries no
// referential link to the income or expense lists.
type TransactionEntry struct {
	Date        Day             `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"` // Description provides an optional note for the transaction.
}

// MarshalJSON implements the json.Marshaler interface for TransactionEntry.
func (e TransactionEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("category", e.Category)
	w.Append("amount", e.Amount)
	w.Optional("description", e.Description)
	return w.MarshalJSON()
}
