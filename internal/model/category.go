package model

// Category represents the severity tier of a compliance finding.
// Every rule outcome falls into exactly one of three tiers; only
// warnings and risks affect the compliance score.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed.
type Category int

const (
	// CategoryConfirmation indicates a check that passed.
	// Examples: HTTPS active, tax ID found on the page.
	// Confirmations never lower the score.
	CategoryConfirmation Category = iota

	// CategoryWarning indicates a soft concern that lowers the score by 10.
	// Examples: missing policy links, no tax ID detected, financial terms
	// appearing without clear context.
	CategoryWarning

	// CategoryRisk indicates a hard violation that lowers the score by 20.
	// Example: promissory phrases ("garantido", "100% aprovado") that the
	// Google Ads "Unacceptable Business Practices" policy flags.
	CategoryRisk
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryConfirmation:
		return "OK"
	case CategoryWarning:
		return "WARNING"
	case CategoryRisk:
		return "RISK"
	default:
		return "UNKNOWN"
	}
}

// Penalty returns the score deduction applied per finding in this category.
func (c Category) Penalty() int {
	switch c {
	case CategoryWarning:
		return 10
	case CategoryRisk:
		return 20
	default:
		return 0
	}
}
