package appeal

import (
	"time"

	"github.com/adsappeal/adsappeal/internal/model"
)

// dateLayout is the Brazilian date format stamped on generated appeals.
const dateLayout = "02/01/2006"

// Builder assembles AppealRecords from a BusinessProfile and a
// ComplianceReport.
//
// Design decision: The builder carries an injectable clock rather than
// calling time.Now directly so tests can assert the generation date.
// Everything else is a pure function of the inputs.
type Builder struct {
	now func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock overrides the time source used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder with the real clock.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles the appeal packet. The compliance report is threaded in
// explicitly by the caller; a nil report is treated as "site not analyzed"
// and yields a packet with a zero score and empty finding lists.
func (b *Builder) Build(profile *model.BusinessProfile, report *model.ComplianceReport) *model.AppealRecord {
	if report == nil {
		report = &model.ComplianceReport{
			Warnings: make([]string, 0),
			Risks:    make([]string, 0),
		}
	}

	return &model.AppealRecord{
		ResponsibleName:    profile.ResponsibleName,
		CompanyName:        profile.CompanyName(),
		AdsAccountID:       profile.AdsAccountID,
		AdsAccountEmail:    profile.AdsAccountEmail,
		CompanyDescription: companyDescription(profile),
		ProblemDescription: problemDescription,
		CorrectiveActions:  correctiveActions(),
		SiteURL:            profile.SiteURL,
		DomainOwnership:    domainOwnership,
		OtherAccounts:      otherAccounts,
		AgencyUsage:        agencyUsage,
		Keywords:           append([]string(nil), profile.Keywords...),
		Attachments:        attachments(),
		ClosingMessage:     closingMessage(profile),
		SiteScore:          report.Score,
		SiteWarnings:       append([]string(nil), report.Warnings...),
		SiteRisks:          append([]string(nil), report.Risks...),
		GeneratedAt:        b.now().Format(dateLayout),
	}
}
