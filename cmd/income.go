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

type incomeCmd struct {
	source string
	amount string
	date   string
	list   bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income entry, or list them" }
func (*incomeCmd) Usage() string {
	return `mb income -s <source> -a <amount> [-d <date>]
mb income -list

  Records a new income entry in the book, or lists the recorded ones.

Usage Examples:
$ mb income -s "Acme Corp" -a 2500 -d 2024-05-01
$ mb income -list

`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.source, "s", "", "Name of the income source.")
	f.StringVar(&p.amount, "a", "", "Monetary amount of the income.")
	f.StringVar(&p.date, "d", moneybook.Today().String(), "Day the income occurred (YYYY-MM-DD).")
	f.BoolVar(&p.list, "list", false, "List the recorded income entries instead of adding one.")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.list {
		printMarkdown(renderer.Income(book.Income()))
		return subcommands.ExitSuccess
	}

	if p.source == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <source> is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}

	book.AddIncome(p.source, amount, moneybook.Day(p.date))
	if status := saveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Income added successfully.")
	return subcommands.ExitSuccess
}
