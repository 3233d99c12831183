package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders money as R$ 1.234,56.
func FormatBRL(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// FormatArea renders square meters with two decimals, e.g. 10,08 m².
func FormatArea(v float64) string {
	return printer.Sprintf("%.2f m²", v)
}

func formatSheets(n int) string {
	if n == 1 {
		return "1 chapa"
	}
	return printer.Sprintf("%d chapas", n)
}
