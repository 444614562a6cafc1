package payslip

import (
	"bytes"
	"fmt"
	"strings"

	"go-paie/internal/paycalc"

	"github.com/jung-kurt/gofpdf"
)

// cp1252 has no narrow no-break space, French grouping uses it.
var pdfSpaces = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

func renderPayslipPDF(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSpaces.Replace(s)) }

	pdf.SetTitle("Bulletin de paie "+p.Period().Label(), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text("Bulletin de paie"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, text("Période : "+p.Period().Label()), "", 1, "L", false, 0, "")
	if name := p.Employee.FullName(); name != "" {
		pdf.CellFormat(0, 7, text("Salarié : "+name), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 7, text("Statut : "+p.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	var section paycalc.Section
	for _, l := range paycalc.Breakdown(p.Result()) {
		if l.Section != section {
			section = l.Section
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetFillColor(230, 230, 230)
			pdf.CellFormat(0, 8, text(string(section)), "1", 1, "L", true, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(120, 7, text(l.Label), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, text(l.Formatted()), "RB", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfFilename(p Payslip) string {
	return fmt.Sprintf("bulletin_%s_%s.pdf", p.EmployeeID, p.Period())
}
