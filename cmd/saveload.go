package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneybook"
	"github.com/google/subcommands"
)

type saveCmd struct {
	target string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the book to a file" }
func (*saveCmd) Usage() string {
	return `mb save [-f <file>]

  Saves the book to a file, by default the book file itself. The saved
  document contains the income and expense lists only (see
  'mb topic persistence').

Usage Examples:
$ mb save -f backup.json

`
}

func (p *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.target, "f", "", "Destination file. Defaults to the book file.")
}

func (p *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	target := p.target
	if target == "" {
		target = *bookFile
	}
	if err := moneybook.SaveFile(target, book); err != nil {
		// A failed save is reported and leaves the file system alone.
		fmt.Fprintf(os.Stderr, "An error occurred while saving: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Data saved.")
	return subcommands.ExitSuccess
}

type loadCmd struct {
	source string
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "load a book document into the book" }
func (*loadCmd) Usage() string {
	return `mb load -f <file>

  Loads a book document into the current book. Each of the income,
  expense and transaction lists present in the document replaces the
  in-memory one; investments are merged into the portfolio. The result
  is written back to the book file.

Usage Examples:
$ mb load -f backup.json

`
}

func (p *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.source, "f", "", "Source file to load. Defaults to the book file.")
}

func (p *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	source := p.source
	if source == "" {
		source = *bookFile
	}

	err = moneybook.LoadFile(source, book)
	if errors.Is(err, moneybook.ErrNotFound) {
		// The book keeps its previous state on a failed load.
		fmt.Fprintln(os.Stderr, "File not found.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred while loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	if source != *bookFile {
		if status := saveBook(book); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Println("Data loaded.")
	return subcommands.ExitSuccess
}
