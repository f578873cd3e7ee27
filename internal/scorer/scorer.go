package scorer

import (
	"strings"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Scorer evaluates the compliance rule table over normalized page text.
// It is stateless between calls: the same (text, URL) pair always yields
// an identical report.
type Scorer struct {
	// policyKeywords, riskPhrases and financeTerms are the word lists the
	// keyword rules run over. They default to the Default* lists and can
	// be overridden from the profile file.
	policyKeywords []string
	riskPhrases    []string
	financeTerms   []string

	// rules is the ordered rule table, built once at construction.
	rules []Rule
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithPolicyKeywords overrides the policy-link keyword list.
// Empty slices are ignored so a partially filled profile file cannot
// accidentally disable a rule.
func WithPolicyKeywords(keywords []string) Option {
	return func(s *Scorer) {
		if len(keywords) > 0 {
			s.policyKeywords = lowerAll(keywords)
		}
	}
}

// WithRiskPhrases overrides the promissory risk-phrase list.
func WithRiskPhrases(phrases []string) Option {
	return func(s *Scorer) {
		if len(phrases) > 0 {
			s.riskPhrases = lowerAll(phrases)
		}
	}
}

// WithFinanceTerms overrides the financial-term list.
func WithFinanceTerms(terms []string) Option {
	return func(s *Scorer) {
		if len(terms) > 0 {
			s.financeTerms = lowerAll(terms)
		}
	}
}

// New creates a Scorer with the default rule table, applying any options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		policyKeywords: DefaultPolicyKeywords,
		riskPhrases:    DefaultRiskPhrases,
		financeTerms:   DefaultFinanceTerms,
	}

	for _, opt := range opts {
		opt(s)
	}

	// The evaluation order is fixed and must be preserved: the finding
	// lists in the report are ordered by rule, and that ordering is part
	// of the report's contract.
	s.rules = []Rule{
		httpsRule(),
		taxIDRule(),
		contactRule(),
		policyLinksRule(s.policyKeywords),
		riskPhrasesRule(s.riskPhrases),
		financeTermsRule(s.financeTerms),
	}

	return s
}

// Score runs every rule in order against the normalized text and source
// URL and returns the resulting ComplianceReport.
//
// Score never fails. Empty text degrades gracefully: every detection rule
// falls to its "not detected" branch, the risk scan confirms the absence
// of promissory terms, and the finance scan stays silent.
func (s *Scorer) Score(text, sourceURL string) *model.ComplianceReport {
	report := model.NewComplianceReport(sourceURL)

	in := Input{
		Text:      text,
		LowerText: strings.ToLower(text),
		URL:       sourceURL,
	}

	for _, rule := range s.rules {
		outcome := rule.Evaluate(in)
		if outcome.Silent {
			continue
		}
		report.AddFinding(outcome.Category, outcome.Message)
	}

	return report
}

// lowerAll lowers every entry of a word list. The substring rules match
// against pre-lowered text, so the lists must be lowercase too.
func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, entry := range list {
		out[i] = strings.ToLower(entry)
	}
	return out
}
