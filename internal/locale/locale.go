// Package locale provides display formatting for money and numbers.
// Currency choice only changes the symbol and grouping — there is no
// exchange-rate conversion anywhere in the application. No calculation
// code reads anything from this package.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Language is a display language selection.
type Language string

// The supported display languages.
const (
	English Language = "en"
	Spanish Language = "es"
	Italian Language = "it"
	French  Language = "fr"
	German  Language = "de"
	Chinese Language = "zh"
)

// Tag maps a display language to its formatting locale.
func (l Language) Tag() language.Tag {
	switch l {
	case Spanish:
		return language.MustParse("es-ES")
	case Italian:
		return language.MustParse("it-IT")
	case French:
		return language.MustParse("fr-FR")
	case German:
		return language.MustParse("de-DE")
	case Chinese:
		return language.MustParse("zh-Hans-CN")
	default:
		return language.AmericanEnglish
	}
}

// Currency is a display currency: a symbol and grouping, nothing more.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// USD is the default display currency.
var USD = Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}

// Currencies lists the selectable display currencies: the four majors
// first, then the Americas alphabetically.
var Currencies = []Currency{
	USD,
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	{Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	{Code: "CRC", Symbol: "₡", Name: "Costa Rican Colón"},
	{Code: "DOP", Symbol: "RD$", Name: "Dominican Peso"},
	{Code: "GTQ", Symbol: "Q", Name: "Guatemalan Quetzal"},
	{Code: "HNL", Symbol: "L", Name: "Honduran Lempira"},
	{Code: "HTG", Symbol: "G", Name: "Haitian Gourde"},
	{Code: "JMD", Symbol: "J$", Name: "Jamaican Dollar"},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
	{Code: "NIO", Symbol: "C$", Name: "Nicaraguan Córdoba"},
	{Code: "PAB", Symbol: "B/.", Name: "Panamanian Balboa"},
	{Code: "PEN", Symbol: "S/.", Name: "Peruvian Sol"},
	{Code: "PYG", Symbol: "₲", Name: "Paraguayan Guarani"},
	{Code: "TTD", Symbol: "TT$", Name: "Trinidad and Tobago Dollar"},
	{Code: "UYU", Symbol: "$U", Name: "Uruguayan Peso"},
}

// CurrencyByCode looks up a selectable currency. Unknown codes fall back
// to USD.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return USD
}

// Formatter renders money and plain numbers for one language/currency
// pair. Money always carries two fraction digits.
type Formatter struct {
	printer  *message.Printer
	currency Currency
}

// NewFormatter builds a formatter for the given display settings.
func NewFormatter(lang Language, cur Currency) Formatter {
	return Formatter{
		printer:  message.NewPrinter(lang.Tag()),
		currency: cur,
	}
}

// Money formats a monetary value with the currency symbol, locale
// grouping and exactly two fraction digits.
func (f Formatter) Money(v float64) string {
	return f.currency.Symbol + f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Quantity formats a non-monetary quantity with locale grouping and at
// most two fraction digits.
func (f Formatter) Quantity(v float64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MaxFractionDigits(2),
	))
}

// Currency returns the formatter's display currency.
func (f Formatter) Currency() Currency {
	return f.currency
}
