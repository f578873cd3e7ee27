package report

import (
	"fmt"
	"strings"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Section is one heading/body pair of the printable appeal document.
type Section struct {
	// Heading is the bold section title.
	Heading string

	// Body is the section text; lines are split on newlines when drawn.
	Body string
}

// appealSections derives the printable document's sections from the appeal
// record. The order is fixed and mirrors the appeal form; the content comes
// from exactly the same record fields the form-text renderer uses, so the
// two outputs can never disagree on facts.
func appealSections(record *model.AppealRecord) []Section {
	actions := make([]string, len(record.CorrectiveActions))
	for i, action := range record.CorrectiveActions {
		actions[i] = fmt.Sprintf("%d. %s", i+1, action)
	}

	return []Section{
		{
			Heading: "Dados da Empresa",
			Body:    fmt.Sprintf("Empresa: %s\nResponsável: %s", record.CompanyName, record.ResponsibleName),
		},
		{
			Heading: "Conta Google Ads",
			Body:    fmt.Sprintf("ID: %s\nE-mail: %s", record.AdsAccountID, record.AdsAccountEmail),
		},
		{
			Heading: "Site",
			Body:    fmt.Sprintf("%s\nScore de conformidade: %d/100", record.SiteURL, record.SiteScore),
		},
		{Heading: "Avisos", Body: joinOrDash(record.SiteWarnings)},
		{Heading: "Riscos", Body: joinOrDash(record.SiteRisks)},
		{Heading: "Descrição da empresa", Body: record.CompanyDescription},
		{Heading: "Problema reportado", Body: record.ProblemDescription},
		{Heading: "Ações tomadas", Body: strings.Join(actions, "\n")},
		{Heading: "Palavras-chave", Body: joinOrDash(record.Keywords)},
		{Heading: "Anexos", Body: strings.Join(record.Attachments, "\n")},
		{Heading: "Mensagem final", Body: record.ClosingMessage},
	}
}

// joinOrDash joins items with newlines, or returns an em dash placeholder
// so empty sections still render a visible body line.
func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, "\n")
}
