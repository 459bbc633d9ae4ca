package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneybook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	amount string
	from   string
	to     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `mb convert -a <amount> -from <currency> -to <currency>

  Converts an amount from one currency to another at the current rate,
  fetched from a remote exchange-rate service. A single best-effort
  request is made: no retry, no caching.

Usage Examples:
$ mb convert -a 100 -from USD -to EUR

`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "a", "", "Amount to convert.")
	f.StringVar(&p.from, "from", "", "Source currency code (e.g. USD).")
	f.StringVar(&p.to, "to", "", "Target currency code (e.g. EUR).")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.from == "" || p.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to are required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}

	converted, err := moneybook.DefaultRateService().Convert(amount, p.from, p.to)
	if errors.Is(err, moneybook.ErrUnknownCurrency) {
		fmt.Fprintf(os.Stderr, "Error: %v. Please use a valid currency code.\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Converted amount: %s\n", converted)
	return subcommands.ExitSuccess
}
