// Package pdf renders printable documents for download endpoints.
package pdf

import (
	"bytes"
	"fmt"

	"accverse/internal/data/entity"

	"github.com/jung-kurt/gofpdf"
)

// RenderInvoice produces a single-page PDF for an invoice addressed to
// its owner.
func RenderInvoice(inv *entity.Invoice, user *entity.User) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.Cell(0, 12, "Accverse")
	doc.Ln(14)

	doc.SetFont("Arial", "B", 14)
	doc.Cell(0, 10, fmt.Sprintf("Invoice %s", inv.Number))
	doc.Ln(12)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 7, fmt.Sprintf("Billed to: %s <%s>", user.Name, user.Email))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Issued: %s", inv.CreatedAt.Format("2 January 2006")))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Due: %s", inv.DueDate.Format("2 January 2006")))
	doc.Ln(12)

	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(140, 8, "Description", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 11)
	doc.CellFormat(140, 8, inv.Description, "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, fmt.Sprintf("$%.2f", inv.Amount), "1", 1, "R", false, 0, "")

	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, fmt.Sprintf("$%.2f", inv.Amount), "1", 1, "R", false, 0, "")
	doc.Ln(10)

	status := fmt.Sprintf("Status: %s", inv.Status)
	if inv.PaidAt != nil {
		status = fmt.Sprintf("Paid on %s", inv.PaidAt.Format("2 January 2006"))
	}
	doc.SetFont("Arial", "I", 10)
	doc.Cell(0, 7, status)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}

	return buf.Bytes(), nil
}
