package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/adsappeal/adsappeal/internal/model"
)

// TextWriter outputs the appeal record as the numbered form block the
// operator pastes into the Google Ads suspension appeal form.
//
// The fourteen sections, their numbering and their labels are fixed: the
// block mirrors the questions of the appeal form one-to-one, and support
// staff cross-check answers against it. The block is lossless with respect
// to the record's content.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the form block followed by the compliance summary.
func (w *TextWriter) Write(record *model.AppealRecord) (int, error) {
	return io.WriteString(w.output, FormText(record))
}

// FormText renders the record into the newline-joined form block.
// It is exposed as a function because the generate command also prints
// the block to the terminal after writing the download files.
func FormText(record *model.AppealRecord) string {
	lines := make([]string, 0, 32)

	lines = append(lines,
		fmt.Sprintf("1) Nome do responsável: %s", record.ResponsibleName),
		fmt.Sprintf("2) Empresa: %s", record.CompanyName),
		fmt.Sprintf("3) ID da conta: %s", record.AdsAccountID),
		fmt.Sprintf("4) E-mail da conta: %s", record.AdsAccountEmail),
		"5) Descrição da empresa:",
		record.CompanyDescription,
		"6) Problema reportado:",
		record.ProblemDescription,
		"7) Ações tomadas:",
	)
	for i, action := range record.CorrectiveActions {
		lines = append(lines, fmt.Sprintf("   %d. %s", i+1, action))
	}

	lines = append(lines,
		fmt.Sprintf("8) Site principal: %s", record.SiteURL),
		fmt.Sprintf("9) Domínio pertence à empresa? %s", record.DomainOwnership),
		fmt.Sprintf("10) Outras contas? %s", record.OtherAccounts),
		fmt.Sprintf("11) Usa agência/parceiro? %s", record.AgencyUsage),
		"12) Palavras-chave:",
	)
	for _, kw := range record.Keywords {
		lines = append(lines, fmt.Sprintf("   - %s", kw))
	}

	lines = append(lines, "13) Anexos:")
	for _, attachment := range record.Attachments {
		lines = append(lines, fmt.Sprintf("   - %s", attachment))
	}

	lines = append(lines,
		"14) Mensagem final:",
		record.ClosingMessage,
		fmt.Sprintf("\nScore de conformidade do site: %d/100", record.SiteScore),
	)
	if len(record.SiteWarnings) > 0 {
		lines = append(lines, "Avisos: "+strings.Join(record.SiteWarnings, "; "))
	}
	if len(record.SiteRisks) > 0 {
		lines = append(lines, "Riscos: "+strings.Join(record.SiteRisks, "; "))
	}

	return strings.Join(lines, "\n")
}
