package infra

// pdf.go — daily sales report generation using go-pdf/fpdf.
// One A4 page per day with:
//   - Business name and report date header
//   - Stock reconciliation block (stock, sold, remaining, revenue, profit)
//   - Client order table (name, quantity, total, delivered)
//
// The output file is saved to storagePath/reporte_{fecha}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"ventadiaria/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarReportePDF writes the day's report and returns the file path.
// storagePath is created if needed.
func GenerarReportePDF(reg *model.RegistroVenta, storagePath, negocio string) (string, error) {
	resumen := reg.CalcularResumen()
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, fmt.Sprintf("reporte_%s.pdf", reg.Fecha))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(negocio), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Reporte de ventas del %s", formatearFecha(reg.Fecha))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Reconciliation block ─────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, tr("Resumen del día"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	filas := []struct{ etiqueta, valor string }{
		{"Producto", resumen.ProductoTexto},
		{"Unidades en stock", fmt.Sprintf("%d", resumen.UnidadesStock)},
		{"Unidades vendidas", fmt.Sprintf("%d", resumen.UnidadesVendidas)},
		{"Unidades restantes", fmt.Sprintf("%d", resumen.UnidadesRestantes)},
		{"Inversión", "$" + reg.Inversion.StringFixed(2)},
		{"Total vendido", "$" + resumen.TotalVendido.StringFixed(2)},
		{"Ganancia", "$" + resumen.Ganancia.StringFixed(2)},
		{"Pedidos entregados", fmt.Sprintf("%d de %d", resumen.Entregados, resumen.Clientes)},
	}
	for _, f := range filas {
		pdf.CellFormat(contentW*0.4, 6, tr(f.etiqueta), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.6, 6, tr(f.valor), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Client table ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Pedidos", "", 1, "L", false, 0, "")

	col1 := contentW * 0.40 // nombre
	col2 := contentW * 0.15 // cantidad
	col3 := contentW * 0.25 // total
	col4 := contentW * 0.20 // entregado

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Total", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Entregado", "B", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range reg.Clientes {
		entregado := "Pendiente"
		if c.Entregado {
			entregado = "Sí"
		}
		pdf.CellFormat(col1, 6, tr(c.Nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", c.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+c.Total.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, tr(entregado), "", 1, "C", false, 0, "")
	}
	if len(reg.Clientes) == 0 {
		pdf.CellFormat(contentW, 6, tr("Sin pedidos registrados"), "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "$"+resumen.TotalVendido.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
