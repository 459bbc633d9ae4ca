package moneybook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// bookDoc is the wire shape of a persisted book document.
//
// A nil slice means the key was absent from the document; Decode relies
// on that to tell "absent" from "present and empty".
type bookDoc struct {
	Income       []IncomeEntry      `json:"income"`
	Expenses     []ExpenseEntry     `json:"expenses"`
	Transactions []TransactionEntry `json:"transactions"`
	Investments  []investmentPair   `json:"investments"`
}

// investmentPair is how a portfolio line appears in a loaded document.
type investmentPair struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// Encode writes the book as a single JSON document with the keys income
// and expenses, in that order.
//
// Transactions and investments are accepted by Decode but never
// written: the save/load asymmetry of the document format is part of
// its contract.
func Encode(w io.Writer, b *Book) error {
	var doc jsonObjectWriter
	doc.Append("income", b.income)
	doc.Append("expenses", b.expenses)
	return writeDoc(w, &doc)
}

// EncodeFull writes the book with all four keys: income, expenses,
// transactions and investments, in that order. It is the full-fidelity
// companion to Encode for callers that keep a working book on disk
// between runs; Decode reads both forms.
func EncodeFull(w io.Writer, b *Book) error {
	invs := make([]investmentPair, 0, b.portfolio.Len())
	for asset, amount := range b.portfolio.Assets() {
		invs = append(invs, investmentPair{Asset: asset, Amount: amount})
	}

	var doc jsonObjectWriter
	doc.Append("income", b.income)
	doc.Append("expenses", b.expenses)
	doc.Append("transactions", b.transactions)
	doc.Append("investments", invs)
	return writeDoc(w, &doc)
}

func writeDoc(w io.Writer, doc *jsonObjectWriter) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write book: %w", err)
	}
	return nil
}

// Decode reads a book document from r and applies it to b. For each of
// the keys income, expenses and transactions present in the document the
// corresponding list is replaced, not merged. The investments key is a
// sequence of {asset, amount} pairs, each merged into the portfolio.
//
// The document is decoded in full before b is touched, so a malformed
// document leaves the book exactly as it was.
func Decode(r io.Reader, b *Book) error {
	var doc bookDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("could not decode book document: %w", err)
	}

	if doc.Income != nil {
		b.income = doc.Income
	}
	if doc.Expenses != nil {
		b.expenses = doc.Expenses
	}
	if doc.Transactions != nil {
		b.transactions = doc.Transactions
	}
	for _, inv := range doc.Investments {
		b.portfolio.Set(inv.Asset, inv.Amount)
	}
	return nil
}
