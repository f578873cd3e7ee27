package report

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Layout constants for the printable appeal document, in centimeters on an
// A4 portrait page.
const (
	pdfMargin         = 2.0 // page margin on all sides
	pdfTitleAdvance   = 1.0 // vertical space consumed by the title line
	pdfHeadingAdvance = 0.6 // vertical space consumed by a section heading
	pdfLineHeight     = 0.5 // vertical space consumed by one body line
	pdfSectionGap     = 0.3 // extra space after each section
	pdfBreakReserve   = 2.0 // start a new page when closer than this to the bottom margin
	pdfMaxLineRunes   = 120 // hard truncation width for body lines
)

// PDFWriter outputs the appeal record as a paginated printable document.
//
// Layout rules: each section renders a bold heading followed by its body
// split into lines. Body lines are hard-truncated to a fixed character
// width; there is no wrapping, because the appeal texts are written to fit
// and truncation keeps the pagination math trivial and deterministic.
// When the cursor would run into the bottom reserve, the writer starts a
// new page and re-emits the current heading with a "(cont.)" suffix.
type PDFWriter struct {
	baseWriter

	// title is drawn on the first page and set as the document title.
	title string
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer, title string) *PDFWriter {
	return &PDFWriter{
		baseWriter: newBaseWriter(output),
		title:      title,
	}
}

// Write renders the record into a PDF byte stream.
func (w *PDFWriter) Write(record *model.AppealRecord) (int, error) {
	doc := fpdf.New("P", "cm", "A4", "")
	// Core fonts are CP1252; the translator maps the Portuguese accented
	// characters onto that code page.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle(w.title, true)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	_, pageHeight := doc.GetPageSize()
	cursor := pdfMargin

	// Title
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(pdfMargin, cursor, tr(w.title))
	cursor += pdfTitleAdvance

	for _, section := range appealSections(record) {
		cursor = drawSection(doc, tr, section, cursor, pageHeight)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

// drawSection draws one heading/body pair starting at the given cursor
// position and returns the cursor position after the section.
func drawSection(doc *fpdf.Fpdf, tr func(string) string, section Section, cursor, pageHeight float64) float64 {
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pdfMargin, cursor, tr(section.Heading))
	cursor += pdfHeadingAdvance
	doc.SetFont("Helvetica", "", 10)

	for _, line := range strings.Split(section.Body, "\n") {
		if cursor > pageHeight-pdfMargin-pdfBreakReserve {
			doc.AddPage()
			cursor = pdfMargin
			doc.SetFont("Helvetica", "B", 12)
			doc.Text(pdfMargin, cursor, tr(section.Heading+" (cont.)"))
			cursor += pdfHeadingAdvance
			doc.SetFont("Helvetica", "", 10)
		}
		doc.Text(pdfMargin, cursor, tr(truncateRunes(line, pdfMaxLineRunes)))
		cursor += pdfLineHeight
	}

	return cursor + pdfSectionGap
}

// truncateRunes hard-truncates a line to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
