package moneybook

import "github.com/shopspring/decimal"

// Book holds the user's financial records.
//
// In a Book entry lists are always in insertion order; reports rely on it.
// The Book owns a single Portfolio: investment operations and report
// snapshots act on the same instance.
type Book struct {
	income       []IncomeEntry
	expenses     []ExpenseEntry
	transactions []TransactionEntry
	portfolio    *Portfolio
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		income:       make([]IncomeEntry, 0),
		expenses:     make([]ExpenseEntry, 0),
		transactions: make([]TransactionEntry, 0),
		portfolio:    NewPortfolio("My Portfolio"),
	}
}

// AddIncome appends a new income entry. The amount sign and the day format
// are the caller's responsibility; the call always succeeds.
func (b *Book) AddIncome(source string, amount decimal.Decimal, day Day) {
	b.income = append(b.income, IncomeEntry{Source: source, Amount: amount, Date: day})
}

// AddExpense appends a new expense entry. Same contract as AddIncome.
func (b *Book) AddExpense(category string, amount decimal.Decimal, day Day) {
	b.expenses = append(b.expenses, ExpenseEntry{Category: category, Amount: amount, Date: day})
}

// AddTransaction appends a new free-form transaction entry.
func (b *Book) AddTransaction(day Day, category string, amount decimal.Decimal, description string) {
	b.transactions = append(b.transactions, TransactionEntry{
		Date:        day,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
}

// AddInvestment sets the portfolio amount for an asset, overwriting any
// prior value for that asset.
func (b *Book) AddInvestment(asset string, amount decimal.Decimal) {
	b.portfolio.Set(asset, amount)
}

// Portfolio returns the book's portfolio.
func (b *Book) Portfolio() *Portfolio { return b.portfolio }

// Income returns the income entries in insertion order.
func (b *Book) Income() []IncomeEntry { return b.income }

// Expenses returns the expense entries in insertion order.
func (b *Book) Expenses() []ExpenseEntry { return b.expenses }

// Transactions returns the transaction entries in insertion order.
func (b *Book) Transactions() []TransactionEntry { return b.transactions }
