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

type expenseCmd struct {
	category string
	amount   string
	date     string
	list     bool
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense entry, or list them" }
func (*expenseCmd) Usage() string {
	return `mb expense -c <category> -a <amount> [-d <date>]
mb expense -list

  Records a new expense entry in the book, or lists the recorded ones.

Usage Examples:
$ mb expense -c Rent -a 1200 -d 2024-05-02
$ mb expense -list

`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Name of the expense category.")
	f.StringVar(&p.amount, "a", "", "Monetary amount of the expense.")
	f.StringVar(&p.date, "d", moneybook.Today().String(), "Day the expense occurred (YYYY-MM-DD).")
	f.BoolVar(&p.list, "list", false, "List the recorded expense entries instead of adding one.")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.list {
		printMarkdown(renderer.Expenses(book.Expenses()))
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

	book.AddExpense(p.category, amount, moneybook.Day(p.date))
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Expense added successfully.")
	return subcommands.ExitSuccess
}
