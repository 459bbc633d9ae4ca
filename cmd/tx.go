package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneybook"
	"github.com/etnz/moneybook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type txCmd struct {
	date        string
	category    string
	amount      string
	description string
	list        bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a free-form transaction, or list them" }
func (*txCmd) Usage() string {
	return `mb tx -c <category> -a <amount> [-d <date>] [-m <description>]
mb tx -list

  Records a free-form transaction in the book, or lists the recorded
  ones. Transactions live alongside income and expenses but are not
  linked to them. Transactions live in the book file, but documents
  written by 'mb save' drop them (see 'mb topic persistence').

Usage Examples:
$ mb tx -d 2024-05-04 -c savings -a 100 -m "monthly transfer"
$ mb tx -list

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", moneybook.Today().String(), "Day of the transaction (YYYY-MM-DD).")
	f.StringVar(&p.category, "c", "", "Category of the transaction (income/expense/savings).")
	f.StringVar(&p.amount, "a", "", "Monetary amount of the transaction.")
	f.StringVar(&p.description, "m", "", "Description of the transaction.")
	f.BoolVar(&p.list, "list", false, "List the recorded transactions instead of adding one.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.list {
		printMarkdown(renderer.Transactions(book.Transactions()))
		return subcommands.ExitSuccess
	}

	if p.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -c <category> is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}

	book.AddTransaction(moneybook.Day(p.date), p.category, amount, p.description)
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Transaction added successfully.")
	return subcommands.ExitSuccess
}
