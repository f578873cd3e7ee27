package fetch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfStringLiteral matches PDF string literals in parentheses: (text here)
var pdfStringLiteral = regexp.MustCompile(`\(([^)]*)\)`)

// ExtractPDFText extracts the concatenated per-page text of a PDF file.
// This is the alternate analysis input for sites that cannot be fetched:
// the operator exports the site to PDF from a browser and uploads that.
//
// Only text-based PDFs work; scanned/image PDFs yield an error because no
// text content streams are present.
func ExtractPDFText(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided upload path is intentional
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", fmt.Errorf("read PDF: %w", err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if text := extractPageText(ctx, pageNr); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("no text content found in %s", path)
	}

	return strings.Join(pages, "\n"), nil
}

// extractPageText pulls the visible text out of one page's content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// textFromContentStream scans PDF content stream operators for shown text.
// Tj/TJ/' operators carry string literals; Td/TD/T* reposition the text
// cursor and become line breaks so the page text keeps its visual order.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) || bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return strings.TrimSpace(sb.String())
}

// decodePDFString handles the basic PDF escape sequences, including octal
// escapes like \040.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}

		i++
		switch {
		case raw[i] == 'n':
			sb.WriteByte('\n')
		case raw[i] == 'r':
			sb.WriteByte('\r')
		case raw[i] == 't':
			sb.WriteByte('\t')
		case raw[i] >= '0' && raw[i] <= '7':
			val := int(raw[i] - '0')
			for j := 0; j < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; j++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}
