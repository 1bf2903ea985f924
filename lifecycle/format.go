package lifecycle

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatNumber печатает число с разделителем разрядов ru-RU.
func FormatNumber(n int) string {
	return ruPrinter.Sprintf("%d", n)
}

// FormatChips - "1 000 фишек".
func FormatChips(n int) string {
	return FormatNumber(n) + " фишек"
}
