package appeal

import (
	"fmt"

	"github.com/adsappeal/adsappeal/internal/model"
)

// problemDescription is the fixed incident paragraph. The suspension reason
// is always the same policy ("Práticas Comerciais Inaceitáveis"), so the
// paragraph is static.
const problemDescription = "Nossa conta foi suspensa por suposta violação da política de Práticas Comerciais Inaceitáveis. " +
	"Realizamos auditoria completa e confirmamos a conformidade com as políticas do Google Ads. " +
	"Não utilizamos alegações enganosas, redirecionamentos indevidos ou coleta indevida de dados. " +
	"Solicitamos revisão manual e reativação da conta."

// Fixed attestations about domain ownership, account exclusivity and
// campaign management.
const (
	domainOwnership = "Sim, o domínio pertence integralmente à empresa e os dados de propriedade coincidem com o CNPJ declarado."
	otherAccounts   = "Não. Esta é a única conta usada para anunciar os próprios serviços da empresa."
	agencyUsage     = "Não. O gerenciamento de campanhas é interno."
)

// correctiveActions is the fixed remediation list. The statements describe
// the audit steps every appellant performs; they are not derived from the
// specific compliance findings.
func correctiveActions() []string {
	return []string{
		"Revisamos todo o conteúdo do site e removemos quaisquer expressões que pudessem gerar interpretação de promessa de resultado.",
		"Destacamos no rodapé razão social, CNPJ, endereço, canais de contato e links para Política de Privacidade, Termos e Cookies.",
		"Mantemos domínio próprio com SSL/HTTPS ativo e dados de propriedade compatíveis com o CNPJ declarado.",
		"Revisamos anúncios, extensões e palavras-chave para garantir linguagem informativa, sem alegações absolutas.",
	}
}

// attachments is the fixed document checklist for the appeal submission.
func attachments() []string {
	return []string{
		"Comprovante de Inscrição e Situação Cadastral (CNPJ) - PDF da Receita Federal",
		"Print de Propriedade do Domínio (WHOIS/painel do registrador)",
		"Comprovante bancário do último pagamento Google Ads",
		"Print da data do último pagamento no painel de faturamento do Google Ads",
		"Print do rodapé do site com razão social, CNPJ e links de políticas",
		"(Opcional) Certidão profissional (CRC/OAB) em PDF",
	}
}

// descriptionTemplate renders the sector-specific company description.
type descriptionTemplate func(p *model.BusinessProfile) string

// sectorDescriptions maps each sector to its description template.
// SectorOther intentionally shares the accounting paragraph: the tool's
// audience is accounting and legal firms, and the accounting wording is
// the safer generic of the two.
var sectorDescriptions = map[model.Sector]descriptionTemplate{
	model.SectorAccounting: accountingDescription,
	model.SectorLegal:      legalDescription,
	model.SectorOther:      accountingDescription,
}

// accountingDescription renders the accounting-sector paragraph. It names
// the services offered and explicitly denies offering credit, financial
// products or result guarantees.
func accountingDescription(p *model.BusinessProfile) string {
	return fmt.Sprintf(
		"%s é uma empresa de assessoria contábil, registrada %s e CNPJ %s. "+
			"Prestamos serviços de contabilidade, planejamento tributário, departamento pessoal e consultoria fiscal. "+
			"Não ofertamos crédito, produtos financeiros ou promessas de resultados.",
		p.LegalName, p.ProfessionalRegistration, p.TaxID,
	)
}

// legalDescription renders the legal-practice paragraph. It references the
// OAB statute oversight and carries the same financial-product denial.
func legalDescription(p *model.BusinessProfile) string {
	return fmt.Sprintf(
		"%s é um escritório de advocacia, inscrito %s e CNPJ %s. "+
			"Prestamos serviços jurídicos consultivos e contenciosos, com atuação ética e em conformidade com o Estatuto da OAB. "+
			"Não ofertamos produtos financeiros, crédito, nem promessas de resultados.",
		p.LegalName, p.ProfessionalRegistration, p.TaxID,
	)
}

// companyDescription selects and renders the description for the profile's
// sector, defaulting to the accounting paragraph for unknown sectors.
func companyDescription(p *model.BusinessProfile) string {
	tmpl, ok := sectorDescriptions[p.Sector]
	if !ok {
		tmpl = accountingDescription
	}
	return tmpl(p)
}

// closingMessage renders the final appeal letter with the responsible
// person, company, institutional email and phone interpolated.
func closingMessage(p *model.BusinessProfile) string {
	return fmt.Sprintf(
		"Prezada equipe do Google Ads,\n\n"+
			"Após auditoria interna criteriosa, confirmamos que o site e as campanhas estão em conformidade com as políticas do Google Ads. "+
			"Implementamos melhorias de transparência e removemos qualquer linguagem que pudesse dar margem a interpretações. "+
			"Solicitamos revisão manual e reativação da conta para continuidade de divulgações institucionais, de forma ética e responsável.\n\n"+
			"Atenciosamente,\n%s\n%s\n%s\n%s",
		p.ResponsibleName, p.LegalName, p.Email, p.Phone,
	)
}
