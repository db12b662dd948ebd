package infra

// pdf.go: curriculum plan export using go-pdf/fpdf.
// A4 portrait document: one section per NivelEducativo, one block per Grado,
// and for each Asignatura its Area, Temas and Logros.

import (
	"fmt"
	"io"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/dto"

	"github.com/go-pdf/fpdf"
)

// WritePlanEstudiosPDF renders plan as a PDF into w.
func WritePlanEstudiosPDF(w io.Writer, plan dto.PlanEstudios, generado time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	// core fonts are cp1252; accents and ñ need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr("Plan de Estudios"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("Generado el "+generado.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(plan.Niveles) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 6, tr("No hay niveles educativos registrados."), "", 1, "L", false, 0, "")
	}

	for _, nivel := range plan.Niveles {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetFillColor(225, 232, 240)
		pdf.CellFormat(contentW, 8, tr(nivel.Nombre), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, grado := range nivel.Grados {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(contentW, 7, tr("Grado "+grado.Nombre), "B", 1, "L", false, 0, "")

			if len(grado.Asignaturas) == 0 {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.CellFormat(contentW, 5, tr("Sin asignaturas."), "", 1, "L", false, 0, "")
			}
			for _, asig := range grado.Asignaturas {
				area := asig.Area
				if asig.Obligatoria {
					area += " (obligatoria)"
				}
				pdf.SetFont("Helvetica", "B", 10)
				pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%s - Área: %s", asig.Nombre, area)), "", 1, "L", false, 0, "")

				escribirLista(pdf, tr, contentW, "Temas", asig.Temas)
				escribirLista(pdf, tr, contentW, "Logros", asig.Logros)
			}
			pdf.Ln(2)
		}
		pdf.Ln(3)
	}

	return pdf.Output(w)
}

func escribirLista(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, titulo string, items []string) {
	pdf.SetFont("Helvetica", "", 9)
	if len(items) == 0 {
		pdf.CellFormat(contentW, 5, tr(titulo+": ninguno"), "", 1, "L", false, 0, "")
		return
	}
	pdf.CellFormat(contentW, 5, tr(titulo+":"), "", 1, "L", false, 0, "")
	for _, item := range items {
		pdf.SetX(22)
		pdf.MultiCell(contentW-7, 4.5, tr("• "+item), "", "L", false)
	}
}
