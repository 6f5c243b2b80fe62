package entity

import "github.com/shopspring/decimal"

// Revenue ingreso agregado de un mes (1 = enero). La tabla es de solo lectura
// para la API; la llena el seed o un proceso externo.
type Revenue struct {
	Month   int
	Revenue decimal.Decimal
}
