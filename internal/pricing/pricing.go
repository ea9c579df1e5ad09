package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts the way the storefront shows them: the currency
// symbol, locale digit grouping, no fraction digits.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for a BCP 47 locale like "en-IN". An
// unparseable locale falls back to English grouping.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Format is a pure function of the amount.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%s%v", f.symbol, number.Decimal(amount, number.MaxFractionDigits(0)))
}
