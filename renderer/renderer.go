// Package renderer turns book collections and reports into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/moneybook"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Report renders a full report as a markdown document, one table per section.
func Report(r moneybook.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Report %s to %s", r.Range.From, r.Range.To))

	doc.H2("Income")
	doc.Table(incomeTable(r.Income))

	doc.H2("Expenses")
	doc.Table(expenseTable(r.Expenses))

	doc.H2("Transactions")
	doc.Table(transactionTable(r.Transactions))

	doc.H2("Investments")
	doc.Table(investmentTable(r.Investments))

	return doc.String()
}

// Income renders the income entries as a markdown table.
func Income(entries []moneybook.IncomeEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Income")
	doc.Table(incomeTable(entries))
	return doc.String()
}

// Expenses renders the expense entries as a markdown table.
func Expenses(entries []moneybook.ExpenseEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Expenses")
	doc.Table(expenseTable(entries))
	return doc.String()
}

// Transactions renders the transaction entries as a markdown table.
func Transactions(entries []moneybook.TransactionEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transactions")
	doc.Table(transactionTable(entries))
	return doc.String()
}

// Investments renders the portfolio as a markdown table, in sorted asset order.
func Investments(p *moneybook.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(p.Name())

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Amount"},
	}
	for asset, amount := range p.Assets() {
		table.Rows = append(table.Rows, []string{asset, amount.String()})
	}
	doc.Table(table)
	return doc.String()
}

func incomeTable(entries []moneybook.IncomeEntry) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Source", "Amount", "Date"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Source, e.Amount.String(), e.Date.String()})
	}
	return table
}

func expenseTable(entries []moneybook.ExpenseEntry) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Category", "Amount", "Date"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Category, e.Amount.String(), e.Date.String()})
	}
	return table
}

func transactionTable(entries []moneybook.TransactionEntry) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Category", "Amount", "Description"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Date.String(), e.Category, e.Amount.String(), e.Description})
	}
	return table
}

func investmentTable(investments map[string]decimal.Decimal) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Amount"},
	}
	assets := make([]string, 0, len(investments))
	for asset := range investments {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	for _, asset := range assets {
		table.Rows = append(table.Rows, []string{asset, investments[asset].String()})
	}
	return table
}
