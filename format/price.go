// Package format turns raw listing numbers into display strings.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidPrice is returned for negative, NaN or infinite prices.
var ErrInvalidPrice = errors.New("invalid price")

const (
	DefaultCurrency = "₦"
	DefaultLocale   = "en-US"
)

// Formatter formats prices for one currency symbol and locale.
// It is safe for concurrent use.
type Formatter struct {
	currency string
	printer  *message.Printer
}

type Option func(*Formatter)

func WithCurrency(symbol string) Option {
	return func(f *Formatter) {
		f.currency = symbol
	}
}

// WithLocale sets the locale used for digit grouping below one thousand.
// Unparseable tags fall back to the default locale.
func WithLocale(tag string) Option {
	return func(f *Formatter) {
		t, err := language.Parse(tag)
		if err != nil {
			t = language.MustParse(DefaultLocale)
		}
		f.printer = message.NewPrinter(t)
	}
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		currency: DefaultCurrency,
		printer:  message.NewPrinter(language.MustParse(DefaultLocale)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Price abbreviates price to millions (one decimal) or thousands (no
// decimals), and otherwise prints it with locale grouping. The quotient is
// rounded half up on its exact binary value, so 1150000 becomes "1.1M" since
// 1.15 is stored just below itself. Rounding happens after the branch is
// chosen, so 999999 becomes "1000K".
func (f *Formatter) Price(price float64) (string, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}

	switch {
	case price >= 1_000_000:
		return f.currency + fixed(price/1_000_000, 1) + "M", nil
	case price >= 1_000:
		return f.currency + fixed(price/1_000, 0) + "K", nil
	default:
		return f.currency + f.printer.Sprintf("%v", number.Decimal(price, number.MaxFractionDigits(3))), nil
	}
}

// fixed rounds q half up to places decimals. q is expanded to its exact
// decimal digits first; a float64 of at least 1 has at most 52 of them.
func fixed(q float64, places int32) string {
	exact := decimal.RequireFromString(strconv.FormatFloat(q, 'f', 60, 64))
	return exact.StringFixed(places)
}

var defaultFormatter = New()

// Price formats with the default currency and locale.
func Price(price float64) (string, error) {
	return defaultFormatter.Price(price)
}

// Quantity prints v in its shortest decimal form, e.g. 4.5 or 1200.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
