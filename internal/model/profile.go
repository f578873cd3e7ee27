package model

import "strings"

// Sector is the closed business-sector category selecting which boilerplate
// description paragraph applies to the appeal.
//
// Design decision: We model the sector as a small closed variant type mapped
// to template functions rather than doing string-prefix checks on free-text
// input. Unknown values fall back to SectorOther, which renders with the
// accounting-sector paragraph.
type Sector int

const (
	// SectorAccounting is an accounting/bookkeeping firm (escritório de
	// contabilidade). This is the default sector.
	SectorAccounting Sector = iota

	// SectorLegal is a legal practice (escritório de advocacia) subject to
	// OAB oversight.
	SectorLegal

	// SectorOther is any other business type. It shares the accounting
	// description template.
	SectorOther
)

// String returns the Portuguese sector label used in documents.
func (s Sector) String() string {
	switch s {
	case SectorAccounting:
		return "Contabilidade"
	case SectorLegal:
		return "Advocacia"
	case SectorOther:
		return "Outro"
	default:
		return "Outro"
	}
}

// ParseSector converts a free-text sector name into a Sector.
// It accepts both Portuguese and English spellings, case-insensitively.
// Anything unrecognized maps to SectorOther.
func ParseSector(s string) Sector {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contabilidade", "accounting":
		return SectorAccounting
	case "advocacia", "legal", "law":
		return SectorLegal
	default:
		return SectorOther
	}
}

// BusinessProfile is the user-supplied identity data for the advertiser.
// All fields are free text except Sector; no validation beyond presence is
// performed because the appeal form accepts whatever the business declares.
//
// The yaml tags match the profile file written by "adsappeal init".
type BusinessProfile struct {
	// LegalName is the registered company name (razão social).
	LegalName string `yaml:"legal_name"`

	// TradeName is the optional trade name (nome fantasia).
	TradeName string `yaml:"trade_name"`

	// Sector selects the description template branch.
	Sector Sector `yaml:"-"`

	// SectorName is the raw sector value from the profile file.
	// It is parsed into Sector when the profile is loaded.
	SectorName string `yaml:"sector"`

	// TaxID is the Brazilian company tax ID (CNPJ).
	TaxID string `yaml:"tax_id"`

	// ProfessionalRegistration is the CRC or OAB registration number.
	ProfessionalRegistration string `yaml:"professional_registration"`

	// Address is the full business address.
	Address string `yaml:"address"`

	// Phone is the business phone number.
	Phone string `yaml:"phone"`

	// Email is the institutional contact email.
	Email string `yaml:"email"`

	// ResponsibleName is the person responsible for the account.
	ResponsibleName string `yaml:"responsible"`

	// AdsAccountID is the Google Ads customer ID.
	AdsAccountID string `yaml:"ads_account_id"`

	// AdsAccountEmail is the email tied to the Google Ads account.
	AdsAccountEmail string `yaml:"ads_account_email"`

	// SiteURL is the advertised site to analyze.
	SiteURL string `yaml:"site_url"`

	// Keywords is the ordered advertising keyword list.
	Keywords []string `yaml:"keywords"`
}

// CompanyName returns the combined company name used in the appeal form:
// the legal name, with the trade name appended when one is set.
func (p *BusinessProfile) CompanyName() string {
	if p.TradeName == "" {
		return p.LegalName
	}
	return p.LegalName + " (Fantasia: " + p.TradeName + ")"
}
