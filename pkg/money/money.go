// Package money concentra la conversión de montos almacenados en centavos a su
// representación de presentación. La convención es única en todo el sistema:
// la base de datos guarda centavos (int64) y la conversión a dólares ocurre
// solo aquí, en el borde de presentación.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents formatea centavos como moneda: 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	d := ToDollars(cents)
	f, _ := d.Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// ToDollars convierte centavos a dólares con dos decimales exactos.
func ToDollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// FromDollars convierte un monto en dólares a centavos, redondeando al centavo.
func FromDollars(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
