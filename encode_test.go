package moneybook

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEncode_WritesIncomeAndExpensesOnly(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")
	book.AddExpense("Rent", d("1200"), "2024-05-02")
	book.AddTransaction("2024-05-03", "misc", d("10"), "note")
	book.AddInvestment("Stocks", d("5000"))

	var buf bytes.Buffer
	if err := Encode(&buf, book); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	want := `{"income":[{"source":"Job","amount":2500,"date":"2024-05-01"}],` +
		`"expenses":[{"category":"Rent","amount":1200,"date":"2024-05-02"}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	// The asymmetry is deliberate: transactions and investments never
	// appear in the saved document.
	if strings.Contains(buf.String(), "transactions") || strings.Contains(buf.String(), "investments") {
		t.Error("Encode() wrote transactions or investments")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")
	book.AddIncome("Side gig", d("300.50"), "2024-05-03")
	book.AddExpense("Rent", d("1200"), "2024-05-02")
	book.AddExpense("Food", d("85.25"), "2024-05-04")

	var buf bytes.Buffer
	if err := Encode(&buf, book); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	got := NewBook()
	if err := Decode(&buf, got); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	// decimal does not keep trailing zeros on the wire ("300.50" comes
	// back as "300.5"), so entries are compared by value, not with
	// reflect.DeepEqual.
	if len(got.Income()) != len(book.Income()) {
		t.Fatalf("round-trip income count = %d, want %d", len(got.Income()), len(book.Income()))
	}
	for i, want := range book.Income() {
		g := got.Income()[i]
		if g.Source != want.Source || g.Date != want.Date || !g.Amount.Equal(want.Amount) {
			t.Errorf("round-trip income[%d] = %+v, want %+v", i, g, want)
		}
	}
	if len(got.Expenses()) != len(book.Expenses()) {
		t.Fatalf("round-trip expenses count = %d, want %d", len(got.Expenses()), len(book.Expenses()))
	}
	for i, want := range book.Expenses() {
		g := got.Expenses()[i]
		if g.Category != want.Category || g.Date != want.Date || !g.Amount.Equal(want.Amount) {
			t.Errorf("round-trip expenses[%d] = %+v, want %+v", i, g, want)
		}
	}
}

func TestEncodeFull_WritesAllKeys(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")
	book.AddExpense("Rent", d("1200"), "2024-05-02")
	book.AddTransaction("2024-05-03", "misc", d("10"), "note")
	book.AddInvestment("Stocks", d("5000"))

	var buf bytes.Buffer
	if err := EncodeFull(&buf, book); err != nil {
		t.Fatalf("EncodeFull() unexpected error: %v", err)
	}

	want := `{"income":[{"source":"Job","amount":2500,"date":"2024-05-01"}],` +
		`"expenses":[{"category":"Rent","amount":1200,"date":"2024-05-02"}],` +
		`"transactions":[{"date":"2024-05-03","category":"misc","amount":10,"description":"note"}],` +
		`"investments":[{"asset":"Stocks","amount":5000}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeFull() = %q, want %q", got, want)
	}
}

func TestSaveFullFile_KeepsTransactionsAndInvestments(t *testing.T) {
	book := NewBook()
	book.AddTransaction("2024-05-03", "misc", d("10"), "note")
	book.AddInvestment("Stocks", d("5000"))

	path := filepath.Join(t.TempDir(), "book.json")
	if err := SaveFullFile(path, book); err != nil {
		t.Fatalf("SaveFullFile() unexpected error: %v", err)
	}

	got := NewBook()
	if err := LoadFile(path, got); err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if len(got.Transactions()) != 1 {
		t.Fatalf("transactions after reload = %d, want 1", len(got.Transactions()))
	}
	amount, ok := got.Portfolio().Amount("Stocks")
	if !ok || !amount.Equal(d("5000")) {
		t.Errorf("Stocks after reload = %v, %v, want 5000, true", amount, ok)
	}
}

func TestSaveLoad_AsymmetryDropsTransactionsAndInvestments(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")
	book.AddTransaction("2024-05-03", "misc", d("10"), "note")
	book.AddInvestment("Stocks", d("5000"))

	path := filepath.Join(t.TempDir(), "book.json")
	if err := SaveFile(path, book); err != nil {
		t.Fatalf("SaveFile() unexpected error: %v", err)
	}

	got := NewBook()
	if err := LoadFile(path, got); err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got.Income(), book.Income()) {
		t.Errorf("loaded income = %v, want %v", got.Income(), book.Income())
	}
	// Save omits transactions and investments, so they must NOT survive
	// the round trip.
	if len(got.Transactions()) != 0 {
		t.Errorf("loaded %d transactions, want none: save omits them", len(got.Transactions()))
	}
	if got.Portfolio().Len() != 0 {
		t.Errorf("loaded %d investments, want none: save omits them", got.Portfolio().Len())
	}
}

func TestDecode_ReplacesListsAndMergesInvestments(t *testing.T) {
	book := NewBook()
	book.AddIncome("Old job", d("1"), "2020-01-01")
	book.AddExpense("Old rent", d("1"), "2020-01-01")
	book.AddInvestment("Gold", d("100"))
	book.AddInvestment("Stocks", d("1"))

	doc := `{
		"income": [{"source":"Job","amount":2500,"date":"2024-05-01"}],
		"expenses": [],
		"transactions": [{"date":"2024-05-03","category":"misc","amount":10,"description":"note"}],
		"investments": [{"asset":"Stocks","amount":5000},{"asset":"Bonds","amount":2000}]
	}`
	if err := Decode(strings.NewReader(doc), book); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	// Lists present in the document replace the in-memory ones.
	wantIncome := []IncomeEntry{{Source: "Job", Amount: d("2500"), Date: "2024-05-01"}}
	if !reflect.DeepEqual(book.Income(), wantIncome) {
		t.Errorf("income = %v, want %v", book.Income(), wantIncome)
	}
	if len(book.Expenses()) != 0 {
		t.Errorf("expenses = %v, want replaced by the empty list", book.Expenses())
	}
	if len(book.Transactions()) != 1 || book.Transactions()[0].Description != "note" {
		t.Errorf("transactions = %v, want the loaded entry", book.Transactions())
	}

	// Investment pairs merge into the portfolio: Gold survives, Stocks
	// is overwritten, Bonds is added.
	p := book.Portfolio()
	if p.Len() != 3 {
		t.Fatalf("Portfolio().Len() = %d, want 3", p.Len())
	}
	for asset, want := range map[string]string{"Gold": "100", "Stocks": "5000", "Bonds": "2000"} {
		if amount, ok := p.Amount(asset); !ok || !amount.Equal(d(want)) {
			t.Errorf("Amount(%s) = %v, %v, want %s, true", asset, amount, ok, want)
		}
	}
}

func TestDecode_AbsentKeysLeaveStateUntouched(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")
	book.AddTransaction("2024-05-03", "misc", d("10"), "note")

	if err := Decode(strings.NewReader(`{"expenses":[]}`), book); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if len(book.Income()) != 1 || len(book.Transactions()) != 1 {
		t.Errorf("absent keys changed state: income=%d transactions=%d, want 1 and 1",
			len(book.Income()), len(book.Transactions()))
	}
}

func TestLoadFile_MissingFileIsErrNotFound(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")

	err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.json"), book)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadFile() error = %v, want ErrNotFound", err)
	}
	// A failed load leaves the in-memory state unchanged.
	if len(book.Income()) != 1 {
		t.Errorf("income = %v, want the pre-load entry", book.Income())
	}
}

func TestDecode_MalformedDocumentLeavesBookUntouched(t *testing.T) {
	book := NewBook()
	book.AddIncome("Job", d("2500"), "2024-05-01")

	err := Decode(strings.NewReader(`{"income": [{"source": 12`), book)
	if err == nil {
		t.Fatal("Decode() of a malformed document did not fail")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("Decode() error = %v, must not be ErrNotFound", err)
	}
	if len(book.Income()) != 1 || book.Income()[0].Source != "Job" {
		t.Errorf("income = %v, want the pre-decode entry", book.Income())
	}
}
