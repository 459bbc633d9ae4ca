// Package cmd implements the CLI application to manage a money book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/moneybook"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global flags.

var bookFile = flag.String("file", "moneybook.json", "Path to the book file (JSON format)")

// Commands lists the subcommands. A main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&txCmd{},
	&investCmd{},
	&reportCmd{},
	&saveCmd{},
	&loadCmd{},
	&convertCmd{},
	&topicCmd{},
}

// loadBook reads the app book file into a fresh book. A missing file is
// not an error: commands simply start from an empty book.
func loadBook() (*moneybook.Book, error) {
	b := moneybook.NewBook()
	err := moneybook.LoadFile(*bookFile, b)
	if err != nil && !errors.Is(err, moneybook.ErrNotFound) {
		return nil, err
	}
	return b, nil
}

// saveBook writes the book back to the app book file. The working file
// keeps all four keys so that transactions and investments survive
// between runs; the lossy document format is only produced by an
// explicit 'mb save'.
func saveBook(b *moneybook.Book) subcommands.ExitStatus {
	if err := moneybook.SaveFullFile(*bookFile, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
