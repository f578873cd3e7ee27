package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/adsappeal/adsappeal/internal/model"
)

// MarkdownWriter outputs compliance analyses in Markdown format.
// This format is designed for sharing the audit result with the client or
// attaching it to the appeal documentation.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteAnalysis outputs the compliance report in Markdown format.
func (w *MarkdownWriter) WriteAnalysis(report *model.ComplianceReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Relatório de Conformidade do Site")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Propriedade", "Valor"},
		Rows: [][]string{
			{"Site", "`" + report.URL + "`"},
			{"Data da análise", report.AnalyzedAt.Format("02/01/2006 15:04")},
			{"Score", strconv.Itoa(report.Score) + "/100"},
		},
	})
	md.PlainText("")

	md.H2("Resumo")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Categoria", "Quantidade"},
		Rows: [][]string{
			{"✅ Conformes", strconv.Itoa(len(report.Confirmations))},
			{"⚠️ Avisos", strconv.Itoa(len(report.Warnings))},
			{"❌ Riscos", strconv.Itoa(len(report.Risks))},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
	w.writeFindings(md, "Conformes", report.Confirmations)
	w.writeFindings(md, "Avisos", report.Warnings)
	w.writeFindings(md, "Riscos", report.Risks)

	return len(md.String()), md.Build()
}

// writeAlert writes a GitHub-flavored alert matching the report state.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ComplianceReport) {
	switch {
	case len(report.Risks) > 0:
		md.Cautionf("Foram detectadas palavras de risco. Remova-as do site antes de enviar a contestação.")
	case len(report.Warnings) > 0:
		md.Warningf("Há pontos de transparência a melhorar antes de enviar a contestação.")
	default:
		md.Tip("Nenhum problema detectado pelas verificações automáticas.")
	}
	md.PlainText("")
}

// writeFindings writes one finding tier as a bullet list, skipping empty
// tiers entirely.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, label string, findings []string) {
	if len(findings) == 0 {
		return
	}
	md.H2(label)
	md.PlainText("")
	md.BulletList(findings...)
	md.PlainText("")
}
