package appeal

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/adsappeal/adsappeal/internal/model"
)

// testProfile returns a filled accounting-sector profile.
func testProfile() *model.BusinessProfile {
	return &model.BusinessProfile{
		LegalName:                "A J Buchner Assessoria S/S",
		TradeName:                "Buchner Assessoria",
		Sector:                   model.SectorAccounting,
		TaxID:                    "51.999.609/0001-57",
		ProfessionalRegistration: "CRC SC-012740/O",
		Address:                  "Servidão Jaborandi, 199",
		Phone:                    "(48) 99961-0081",
		Email:                    "contato@example.com.br",
		ResponsibleName:          "João Lucas Buchner",
		AdsAccountID:             "123-456-7890",
		AdsAccountEmail:          "ads@example.com.br",
		SiteURL:                  "https://example.com.br/",
		Keywords:                 []string{"serviços de contabilidade", "planejamento tributário"},
	}
}

// fixedClock returns a deterministic clock for date assertions.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	}
}

// TestBuildSectorDescriptions tests the sector-specific description
// paragraphs and their financial-product denial clauses.
func TestBuildSectorDescriptions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		sector      model.Sector
		mustContain []string
		mustNotOmit string
	}{
		{
			name:   "accounting references tax services and denies financial products",
			sector: model.SectorAccounting,
			mustContain: []string{
				"assessoria contábil",
				"planejamento tributário",
				"CRC SC-012740/O",
				"51.999.609/0001-57",
			},
			mustNotOmit: "Não ofertamos crédito, produtos financeiros ou promessas de resultados.",
		},
		{
			name:   "legal practice references OAB oversight and denies financial products",
			sector: model.SectorLegal,
			mustContain: []string{
				"escritório de advocacia",
				"Estatuto da OAB",
				"CRC SC-012740/O",
				"51.999.609/0001-57",
			},
			mustNotOmit: "Não ofertamos produtos financeiros, crédito, nem promessas de resultados.",
		},
		{
			name:        "other defaults to the accounting paragraph",
			sector:      model.SectorOther,
			mustContain: []string{"assessoria contábil"},
			mustNotOmit: "Não ofertamos crédito, produtos financeiros ou promessas de resultados.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			profile := testProfile()
			profile.Sector = tc.sector
			record := NewBuilder(WithClock(fixedClock())).Build(profile, nil)

			for _, fragment := range tc.mustContain {
				if !strings.Contains(record.CompanyDescription, fragment) {
					t.Errorf("description %q should contain %q", record.CompanyDescription, fragment)
				}
			}
			if !strings.Contains(record.CompanyDescription, tc.mustNotOmit) {
				t.Errorf("description %q should contain denial clause %q", record.CompanyDescription, tc.mustNotOmit)
			}
		})
	}
}

// TestBuildRecordFields tests the assembled record's field mapping.
func TestBuildRecordFields(t *testing.T) {
	t.Parallel()

	profile := testProfile()
	siteReport := model.NewComplianceReport("https://example.com.br/")
	siteReport.AddFinding(model.CategoryWarning, "Site sem HTTPS (use HTTPS).")
	siteReport.AddFinding(model.CategoryRisk, "Palavras de risco detectadas: garantido")

	record := NewBuilder(WithClock(fixedClock())).Build(profile, siteReport)

	if record.ResponsibleName != "João Lucas Buchner" {
		t.Errorf("ResponsibleName = %q", record.ResponsibleName)
	}
	if record.CompanyName != "A J Buchner Assessoria S/S (Fantasia: Buchner Assessoria)" {
		t.Errorf("CompanyName = %q", record.CompanyName)
	}
	if record.AdsAccountID != "123-456-7890" || record.AdsAccountEmail != "ads@example.com.br" {
		t.Errorf("ads account fields = %q / %q", record.AdsAccountID, record.AdsAccountEmail)
	}
	if record.SiteURL != "https://example.com.br/" {
		t.Errorf("SiteURL = %q", record.SiteURL)
	}
	if len(record.CorrectiveActions) != 4 {
		t.Errorf("CorrectiveActions has %d entries, expected 4", len(record.CorrectiveActions))
	}
	if len(record.Attachments) != 6 {
		t.Errorf("Attachments has %d entries, expected 6", len(record.Attachments))
	}
	if !reflect.DeepEqual(record.Keywords, profile.Keywords) {
		t.Errorf("Keywords = %v", record.Keywords)
	}
	if record.GeneratedAt != "30/08/2026" {
		t.Errorf("GeneratedAt = %q, expected 30/08/2026", record.GeneratedAt)
	}

	// Compliance findings copied verbatim.
	if record.SiteScore != siteReport.Score {
		t.Errorf("SiteScore = %d, expected %d", record.SiteScore, siteReport.Score)
	}
	if !reflect.DeepEqual(record.SiteWarnings, siteReport.Warnings) {
		t.Errorf("SiteWarnings = %v", record.SiteWarnings)
	}
	if !reflect.DeepEqual(record.SiteRisks, siteReport.Risks) {
		t.Errorf("SiteRisks = %v", record.SiteRisks)
	}
}

// TestBuildClosingMessage tests the closing-letter interpolation.
func TestBuildClosingMessage(t *testing.T) {
	t.Parallel()

	record := NewBuilder(WithClock(fixedClock())).Build(testProfile(), nil)

	for _, fragment := range []string{
		"Prezada equipe do Google Ads,",
		"João Lucas Buchner",
		"A J Buchner Assessoria S/S",
		"contato@example.com.br",
		"(48) 99961-0081",
	} {
		if !strings.Contains(record.ClosingMessage, fragment) {
			t.Errorf("closing message should contain %q", fragment)
		}
	}
}

// TestBuildNilReport tests generation without a site analysis.
func TestBuildNilReport(t *testing.T) {
	t.Parallel()

	record := NewBuilder(WithClock(fixedClock())).Build(testProfile(), nil)

	if record.SiteScore != 0 {
		t.Errorf("SiteScore = %d, expected 0", record.SiteScore)
	}
	if record.SiteWarnings == nil || len(record.SiteWarnings) != 0 {
		t.Errorf("SiteWarnings = %#v, expected empty non-nil slice", record.SiteWarnings)
	}
	if record.SiteRisks == nil || len(record.SiteRisks) != 0 {
		t.Errorf("SiteRisks = %#v, expected empty non-nil slice", record.SiteRisks)
	}
}

// TestBuildDeterministic tests that identical inputs yield identical
// records.
func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(WithClock(fixedClock()))
	first := builder.Build(testProfile(), nil)
	second := builder.Build(testProfile(), nil)

	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different records")
	}
}
