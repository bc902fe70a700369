package exportsvc

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/gmarcondes/prioriza/core/order"
)

type pdfService struct{}

var _ order.Exporter = (*pdfService)(nil)

func NewPDFService() order.Exporter {
	return &pdfService{}
}

// OpenOrders renders the production-order document: a centered title line
// followed by one line per order, in the sequence given (callers pass the
// score-sorted view). Page breaks are handled by the cell flow; an empty
// view still yields a valid, title-only document.
func (svc *pdfService) OpenOrders(rows []order.Order) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 covers the pt-BR accents
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(0, 10, tr(order.ExportTitle), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	for _, o := range rows {
		line := fmt.Sprintf("Pedido: %s, Urgência: %d, Complexidade: %d, Custo: %d, Prazo: %s",
			o.Name, o.Urgency, o.Complexity, o.Cost, o.Due)
		pdf.CellFormat(0, 10, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering PDF")
	}
	return &buf, nil
}
