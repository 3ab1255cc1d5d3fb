// Package money formats prices for display using locale-aware currency rules.
package money

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults used when no currency or locale is configured.
const (
	DefaultCurrency = "USD"
	DefaultLocale   = "en-US"
)

// Formatter renders decimal amounts in one currency for one locale.
type Formatter struct {
	printer  *message.Printer
	unit     currency.Unit
	symbol   string
	decimal  string
	grouping string
	scale    int
}

// NewFormatter creates a formatter for an ISO 4217 currency code and a BCP 47 locale.
func NewFormatter(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	printer := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		printer:  printer,
		unit:     unit,
		symbol:   printer.Sprint(currency.Symbol(unit)),
		decimal:  separator(printer.Sprint(number.Decimal(1.5, number.Scale(1)))),
		grouping: separator(printer.Sprint(number.Decimal(1000000))),
		scale:    scale,
	}, nil
}

// MustFormatter is like NewFormatter but panics on error.
func MustFormatter(currencyCode, locale string) *Formatter {
	f, err := NewFormatter(currencyCode, locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders price rounded to the currency's standard scale, e.g. $1,234.50.
// Digits come from the decimal itself, so large amounts stay exact.
func (f *Formatter) Format(price decimal.Decimal) string {
	rounded := price.Round(int32(f.scale))

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
		rounded = rounded.Neg()
	}
	b.WriteString(f.symbol)

	whole := rounded.Truncate(0)
	f.writeInteger(&b, whole.BigInt())

	if f.scale > 0 {
		cents := rounded.Sub(whole).Shift(int32(f.scale)).IntPart()
		b.WriteString(f.decimal)
		b.WriteString(f.printer.Sprint(number.Decimal(cents, number.MinIntegerDigits(f.scale), number.NoSeparator())))
	}
	return b.String()
}

// chunkDigits is the width of the int64 chunks a large integer is printed in.
const chunkDigits = 18

var chunkBase = new(big.Int).Exp(big.NewInt(10), big.NewInt(chunkDigits), nil)

// writeInteger prints a non-negative integer with the locale's digit grouping.
func (f *Formatter) writeInteger(b *strings.Builder, n *big.Int) {
	if n.IsInt64() {
		b.WriteString(f.printer.Sprint(number.Decimal(n.Int64())))
		return
	}

	var chunks []int64
	rest := new(big.Int).Set(n)
	low := new(big.Int)
	for rest.Cmp(chunkBase) >= 0 {
		rest.QuoRem(rest, chunkBase, low)
		chunks = append(chunks, low.Int64())
	}

	b.WriteString(f.printer.Sprint(number.Decimal(rest.Int64())))
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteString(f.grouping)
		b.WriteString(f.printer.Sprint(number.Decimal(chunks[i], number.MinIntegerDigits(chunkDigits))))
	}
}

// separator returns the first run of non-digit runes in a formatted number.
func separator(formatted string) string {
	trimmed := strings.TrimLeftFunc(formatted, unicode.IsDigit)
	end := strings.IndexFunc(trimmed, unicode.IsDigit)
	if end < 0 {
		return ""
	}
	return trimmed[:end]
}

// Currency returns the ISO code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
