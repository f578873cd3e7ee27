package model

// AppealRecord is the fully assembled appeal packet submitted to contest a
// Google Ads account suspension. It is built once from a BusinessProfile and
// a ComplianceReport and is immutable thereafter: every renderer (form text,
// JSON download, printable PDF) reads from the same record so their content
// can never diverge.
//
// Design decision: The JSON tags use Portuguese key names. The downloaded
// FormData JSON is pasted into and cross-checked against a
// Portuguese-language form, so stable Portuguese keys matter more than Go
// naming conventions here.
type AppealRecord struct {
	// ResponsibleName is the person answering the suspension appeal form.
	ResponsibleName string `json:"responsavel_nome"`

	// CompanyName is the legal name, with the trade name appended when set.
	CompanyName string `json:"empresa_nome"`

	// AdsAccountID is the suspended Google Ads customer ID.
	AdsAccountID string `json:"id_conta_ads"`

	// AdsAccountEmail is the email tied to the Google Ads account.
	AdsAccountEmail string `json:"email_conta_ads"`

	// CompanyDescription is the sector-specific boilerplate paragraph.
	CompanyDescription string `json:"descricao_empresa"`

	// ProblemDescription is the fixed incident paragraph describing the
	// suspension and the audit performed.
	ProblemDescription string `json:"descricao_problema"`

	// CorrectiveActions is the fixed list of remediation statements.
	CorrectiveActions []string `json:"acoes_corretivas"`

	// SiteURL is the advertised site.
	SiteURL string `json:"site_principal"`

	// DomainOwnership is the fixed domain-ownership attestation.
	DomainOwnership string `json:"dominio_proprio"`

	// OtherAccounts is the fixed single-account attestation.
	OtherAccounts string `json:"outras_contas"`

	// AgencyUsage is the fixed no-agency attestation.
	AgencyUsage string `json:"usa_agencia"`

	// Keywords is the advertising keyword list, copied from the profile.
	Keywords []string `json:"palavras_chave"`

	// Attachments is the fixed checklist of documents to attach.
	Attachments []string `json:"anexos"`

	// ClosingMessage is the final appeal letter, interpolated with the
	// responsible person, company, email and phone.
	ClosingMessage string `json:"mensagem_final"`

	// SiteScore is copied verbatim from the ComplianceReport.
	SiteScore int `json:"site_score"`

	// SiteWarnings is copied verbatim from the ComplianceReport.
	SiteWarnings []string `json:"site_warnings"`

	// SiteRisks is copied verbatim from the ComplianceReport.
	SiteRisks []string `json:"site_issues"`

	// GeneratedAt is the generation date in dd/mm/yyyy format.
	GeneratedAt string `json:"gerado_em"`
}
