package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneybook"
	"github.com/etnz/moneybook/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	start string
	end   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report entries over a date range" }
func (*reportCmd) Usage() string {
	return `mb report -s <start_date> -e <end_date>

  Reports the income, expense and transaction entries whose date falls
  between the start and end dates, boundaries included, together with
  the full portfolio. Dates compare as strings, so use the ISO
  YYYY-MM-DD form.

Usage Examples:
$ mb report -s 2024-05-01 -e 2024-05-31

`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date of the reporting period (YYYY-MM-DD).")
	f.StringVar(&p.end, "e", moneybook.Today().String(), "The end date of the reporting period (YYYY-MM-DD).")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.start == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <start_date> is required.")
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := book.BuildReport(moneybook.Day(p.start), moneybook.Day(p.end))
	printMarkdown(renderer.Report(report))

	return subcommands.ExitSuccess
}
