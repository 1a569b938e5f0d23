package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF rencana perjalanan yang bisa diunduh.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

// GeneratePlanPDF lays out the Markdown display of the plan on Letter pages
// and returns the document with its download filename.
func (s DocsService) GeneratePlanPDF(plan models.ReconciledItinerary) ([]byte, string, error) {
	now := s.now()
	pdfBytes, err := buildPlanPDF(RenderMarkdown(plan), now)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}

	city := plan.Destination
	if len(plan.Cities) > 0 {
		city = plan.Cities[0]
	}
	filename := fmt.Sprintf("TRAVEL_PLAN_%s.pdf", utils.SafeFilenamePart(city))
	utils.LogEvent(s.RequestID, "docs", "generate_plan_pdf", fmt.Sprintf("days=%d bytes=%d", len(plan.Days), len(pdfBytes)))
	return pdfBytes, filename, nil
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildPlanPDF(markdown string, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12.7, 17.8, 12.7)
	pdf.SetAutoPageBreak(true, 17.8)
	pdf.SetTitle("AI Travel Guide Plan", true)
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.SetCatalogSort(true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AI Travel Guide Plan")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(generated))
	pdf.Ln(10)

	for _, line := range strings.Split(markdown, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(0, 8, tr(line[2:]), "", "", false)
			pdf.Ln(2)
		case strings.HasPrefix(line, "## "):
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 7, tr(line[3:]), "", "", false)
			pdf.Ln(1)
		case strings.HasPrefix(line, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(line[4:]), "", "", false)
		case strings.HasPrefix(line, "- "):
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, 6, tr("• "+line[2:]), "", "", false)
		case strings.TrimSpace(line) == "":
			pdf.Ln(2)
		default:
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
