// Package moneybook keeps a personal record of income, expenses,
// free-form transactions and a simple investment portfolio.
//
// The core functionalities include:
//   - Record Keeping: income, expense and transaction entries are kept
//     in insertion order; the portfolio maps asset names to their
//     current amount.
//   - Reporting: a linear scan collects the entries whose day falls in
//     an inclusive range, together with the full portfolio.
//   - Data Persistence: encoding and decoding the book to and from a
//     single human-readable JSON document.
//   - Currency Conversion: a best-effort lookup against a remote
//     exchange-rate service.
//
// This package serves as the foundational logic for the `mb`
// command-line tool.
package moneybook
