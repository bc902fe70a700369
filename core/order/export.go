package order

import "bytes"

// ExportTitle is the fixed first line of the production-order document.
const ExportTitle = "Ordem de Produção - Pedidos Abertos"

// Exporter renders the sorted open-order view into a printable document.
// Implementations must fail with an error, never panic: an export failure
// is recoverable and must not take the session down.
type Exporter interface {
	OpenOrders(rows []Order) (*bytes.Buffer, error)
}
