// Package format renders values for chat display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Number renders an integer with thousands separators, e.g. 1234567 as "1,234,567"
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}
