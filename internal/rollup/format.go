package rollup

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency values for display: exactly two fraction digits
// with locale-aware grouping. Formatting is a boundary concern only; formatted
// strings never feed back into sums.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale tag. Unparseable tags
// fall back to English rather than failing the render.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Currency formats n with exactly two decimal places and thousands grouping,
// e.g. 1200.5 -> "1,200.50" under the English locale.
func (f *Formatter) Currency(n float64) string {
	return f.printer.Sprint(number.Decimal(n,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
