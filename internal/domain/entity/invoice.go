package entity

import "time"

// Estados válidos de una factura.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice representa la factura emitida a un cliente.
//
// CustomerID es una copia en texto del id del cliente: la tabla no tiene foreign
// key, así que pueden existir referencias colgantes. Las lecturas con join las
// descartan en vez de fallar.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // siempre en centavos; la conversión a dólares ocurre solo en presentación
	Status     string
	Date       time.Time
}
