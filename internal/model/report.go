package model

import "time"

// ComplianceReport is the result of analyzing a site's compliance posture.
// It holds a 0-100 heuristic score and the three ordered finding lists
// produced by the rule set.
//
// Design decision: We keep the three tiers as plain ordered string slices
// rather than a single []Finding because the rule evaluation order is part
// of the report's observable contract: renderers and tests rely on findings
// appearing in exactly the order the rules ran.
type ComplianceReport struct {
	// URL is the analyzed site address. Empty when the text came from an
	// uploaded PDF instead of a fetch.
	URL string `json:"url,omitempty"`

	// AnalyzedAt is the timestamp when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Score is the compliance score in [0,100].
	// Invariant: Score == clamp(100 - 20*len(Risks) - 10*len(Warnings), 0, 100).
	Score int `json:"score"`

	// Confirmations lists checks that passed, in rule order.
	Confirmations []string `json:"confirmations"`

	// Warnings lists soft concerns, in rule order. Each costs 10 points.
	Warnings []string `json:"warnings"`

	// Risks lists hard violations, in rule order. Each costs 20 points.
	Risks []string `json:"risks"`
}

// NewComplianceReport creates an empty report for the given URL.
// An empty report has a perfect score because it carries no findings yet.
func NewComplianceReport(url string) *ComplianceReport {
	return &ComplianceReport{
		URL:           url,
		AnalyzedAt:    time.Now(),
		Score:         100,
		Confirmations: make([]string, 0),
		Warnings:      make([]string, 0),
		Risks:         make([]string, 0),
	}
}

// AddFinding appends a finding to the list matching its category and
// recomputes the score so the score invariant holds after every mutation.
func (r *ComplianceReport) AddFinding(category Category, message string) {
	switch category {
	case CategoryConfirmation:
		r.Confirmations = append(r.Confirmations, message)
	case CategoryWarning:
		r.Warnings = append(r.Warnings, message)
	case CategoryRisk:
		r.Risks = append(r.Risks, message)
	}
	r.Score = computeScore(len(r.Risks), len(r.Warnings))
}

// TotalFindings returns the number of findings across all three tiers.
func (r *ComplianceReport) TotalFindings() int {
	return len(r.Confirmations) + len(r.Warnings) + len(r.Risks)
}

// HasRisks reports whether any hard violation was found.
func (r *ComplianceReport) HasRisks() bool {
	return len(r.Risks) > 0
}

// computeScore applies the fixed scoring rubric: start from 100, deduct
// 20 per risk and 10 per warning, clamp to [0,100].
func computeScore(risks, warnings int) int {
	score := 100 - CategoryRisk.Penalty()*risks - CategoryWarning.Penalty()*warnings
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
