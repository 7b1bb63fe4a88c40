package report

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	headerFillR = 0xf3
	headerFillG = 0xf4
	headerFillB = 0xf6

	lineHeight = 5.5
	cellPad    = 1.5
)

// RenderPDF writes the document as a letter-sized PDF. Table content is
// deterministic for a given document; only the PDF metadata timestamps
// vary between runs.
func (d *Document) RenderPDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(d.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(d.Timeframe), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(d.Summary) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
		rows := make([][]string, 0, len(d.Summary))
		for _, s := range d.Summary {
			rows = append(rows, []string{s.Label, strconv.Itoa(s.Count)})
		}
		drawTable(pdf, tr, []string{"Mood", "Count"}, rows, []float64{60, 25})
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Entries", "", 1, "L", false, 0, "")
	rows := make([][]string, 0, len(d.Details))
	for _, e := range d.Details {
		rows = append(rows, []string{e.Date, e.Label, e.Emoji, e.Note})
	}
	drawTable(pdf, tr, []string{"Date", "Mood", "Emoji", "Note"}, rows, []float64{30, 40, 18, 98})

	return pdf.Output(w)
}

// drawTable renders a bordered grid, growing row height to fit wrapped
// text in any column.
func drawTable(pdf *gofpdf.Fpdf, tr func(string) string, headers []string, rows [][]string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerFillR, headerFillG, headerFillB)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineHeight+2*cellPad, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := make([][]string, len(row))
		rowLines := 1
		for i, raw := range row {
			lines := pdf.SplitText(tr(raw), widths[i]-2*cellPad)
			if len(lines) == 0 {
				lines = []string{""}
			}
			if len(lines) > rowLines {
				rowLines = len(lines)
			}
			cells[i] = lines
		}
		rowH := float64(rowLines)*lineHeight + 2*cellPad

		// Keep the whole row on one page.
		_, pageH := pdf.GetPageSize()
		_, _, _, mBottom := pdf.GetMargins()
		if pdf.GetY()+rowH > pageH-mBottom {
			pdf.AddPage()
		}

		x, y := pdf.GetXY()
		for i, lines := range cells {
			pdf.Rect(x, y, widths[i], rowH, "D")
			pdf.SetXY(x+cellPad, y+cellPad)
			for _, line := range lines {
				pdf.CellFormat(widths[i]-2*cellPad, lineHeight, line, "", 2, "L", false, 0, "")
			}
			x += widths[i]
		}
		pdf.SetY(y + rowH)
	}
}
