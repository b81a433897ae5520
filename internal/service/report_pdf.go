package service

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"esg-maturity-backend/internal/esg"
)

type reportDocument struct {
	Title        string
	Subtitle     string
	Municipality string
	Catalog      esg.Catalog
	Result       esg.AssessmentResult
	Plan         []esg.ActionPlanItem
	GeneratedAt  time.Time
}

// renderReportPDF writes the score summary, the per-category table and the
// action plan grouped by horizon.
func renderReportPDF(w io.Writer, doc reportDocument) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Municipality, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s - página %d/{nb}", doc.Municipality, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(doc.Municipality), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr("Gerado em "+doc.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Overall score
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, tr("Resultado geral"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Pontuação: %.1f de %.0f (%.1f%%)", doc.Result.TotalScore, doc.Result.MaxScore, doc.Result.Percentage)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Nível de maturidade: "+doc.Result.Level.Label()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Category table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 230, 220)
	widths := []float64{90, 25, 25, 25, 25}
	for i, h := range []string{"Categoria", "Pontos", "Máximo", "%", "Nível"} {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, cat := range doc.Catalog.Categories {
		cs := doc.Result.CategoryScores[cat.ID]
		pdf.CellFormat(widths[0], 7, tr(cat.Title), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%.1f", cs.Score), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.0f", cs.Max), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.1f", cs.Percentage), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, tr(esg.TierFor(cs.Percentage).Label()), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	// Action plan
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, tr("Plano de ação"), "", 1, "L", false, 0, "")
	titles := make(map[string]string, len(doc.Catalog.Categories))
	for _, cat := range doc.Catalog.Categories {
		titles[cat.ID] = cat.DisplayName()
	}
	for _, group := range esg.GroupByTimeFrame(doc.Plan) {
		if len(group.Items) == 0 {
			continue
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(0, 7, tr(group.Label), "", 1, "L", true, 0, "")
		for _, item := range group.Items {
			pdf.SetFont("Arial", "B", 10)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s] %s", item.Priority, item.Title)), "", "L", false)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, tr(item.Description), "", "L", false)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Categoria: %s | Responsável: %s", titles[item.Category], item.Responsible)), "", "L", false)
			pdf.MultiCell(0, 5, tr("Impacto: "+item.Impact), "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
