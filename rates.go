package moneybook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// defaultRatesURL serves the latest exchange rates keyed by source currency.
const defaultRatesURL = "https://api.exchangerate-api.com/v4/latest/"

// ErrUnknownCurrency reports a currency code the rate service does not list.
var ErrUnknownCurrency = errors.New("unknown currency code")

// RateService fetches current exchange rates from a remote service.
//
// Every lookup is a single best-effort request: no retry, no caching,
// no timeout configuration beyond what the Client carries.
type RateService struct {
	BaseURL string
	Client  *http.Client
}

// DefaultRateService returns a service backed by api.exchangerate-api.com.
func DefaultRateService() *RateService {
	return &RateService{BaseURL: defaultRatesURL, Client: new(http.Client)}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// Rates returns the rate table for a source currency: currency code to
// rate relative to from, the source currency itself mapping to 1.
// A source currency absent from its own table is reported as
// ErrUnknownCurrency.
func (s *RateService) Rates(from string) (map[string]decimal.Decimal, error) {
	addr := s.BaseURL + url.PathEscape(from)

	var jobj any
	if err := jwget(s.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch rates for %q: %w", from, err)
	}

	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("no rates in response for %q: %w", from, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// 1 answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	table, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("malformed rates in response for %q", from)
	}

	rates := make(map[string]decimal.Decimal, len(table))
	for code, v := range table {
		rate, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("malformed rate for %q in response for %q", code, from)
		}
		rates[code] = decimal.NewFromFloat(rate)
	}

	if _, ok := rates[from]; !ok {
		return nil, fmt.Errorf("currency %q: %w", from, ErrUnknownCurrency)
	}
	return rates, nil
}

// Convert converts an amount from one currency to another at the
// current rate. Unknown source or target currency codes are reported as
// ErrUnknownCurrency; transport failures wrap the underlying error. On
// success it returns amount × rate in the target currency.
func (s *RateService) Convert(amount decimal.Decimal, from, to string) (Money, error) {
	rates, err := s.Rates(from)
	if err != nil {
		return Money{}, err
	}
	rate, ok := rates[to]
	if !ok {
		return Money{}, fmt.Errorf("currency %q: %w", to, ErrUnknownCurrency)
	}
	return M(amount.Mul(rate), to), nil
}
