package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneybook"
	"github.com/etnz/moneybook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type investCmd struct {
	asset  string
	amount string
	remove string
	grow   string
	rate   string
	list   bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "manage the investment portfolio" }
func (*investCmd) Usage() string {
	return `mb invest -asset <name> -a <amount>
mb invest -rm <name>
mb invest -grow <name> -r <rate>
mb invest -list

  Sets, removes or grows an investment in the portfolio, or lists the
  held assets. Setting an asset overwrites its previous amount. The
  growth rate is fractional: -r 0.10 grows the amount by 10%, negative
  rates shrink it. The portfolio lives in the book file, but documents
  written by 'mb save' drop it (see 'mb topic persistence').

Usage Examples:
$ mb invest -asset Stocks -a 5000
$ mb invest -grow Stocks -r 0.10
$ mb invest -rm Stocks

`
}

func (p *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.asset, "asset", "", "Name of the asset to set.")
	f.StringVar(&p.amount, "a", "", "Monetary amount of the investment.")
	f.StringVar(&p.remove, "rm", "", "Name of the asset to remove.")
	f.StringVar(&p.grow, "grow", "", "Name of the asset to grow.")
	f.StringVar(&p.rate, "r", "", "Fractional growth rate (e.g. 0.10 for 10%).")
	f.BoolVar(&p.list, "list", false, "List the held assets.")
}

func (p *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	portfolio := book.Portfolio()

	switch {
	case p.list:
		printMarkdown(renderer.Investments(portfolio))
		return subcommands.ExitSuccess

	case p.remove != "":
		// Removing an absent asset is a no-op, not an error.
		portfolio.Remove(p.remove)
		fmt.Printf("Investment %q removed.\n", p.remove)
		return saveBook(book)

	case p.grow != "":
		rate, err := decimal.NewFromString(p.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", p.rate, err)
			return subcommands.ExitUsageError
		}
		amount, err := portfolio.Grow(p.grow, rate)
		if errors.Is(err, moneybook.ErrAssetNotFound) {
			fmt.Fprintln(os.Stderr, "Investment not found.")
			return subcommands.ExitFailure
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s's new value after growth: %s\n", p.grow, amount)
		return saveBook(book)

	case p.asset != "":
		amount, err := decimal.NewFromString(p.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
			return subcommands.ExitUsageError
		}
		book.AddInvestment(p.asset, amount)
		if status := saveBook(book); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Println("Investment added successfully.")
		return subcommands.ExitSuccess

	default:
		fmt.Fprintln(os.Stderr, "Error: one of -asset, -rm, -grow or -list is required.")
		return subcommands.ExitUsageError
	}
}
