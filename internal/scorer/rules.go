package scorer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Default word lists for the keyword-based rules. The literals are
// Portuguese because the tool targets Brazilian advertisers appealing
// against the Google Ads "Práticas Comerciais Inaceitáveis" policy.
var (
	// DefaultPolicyKeywords are the policy-page link texts a transparent
	// site is expected to carry. Two or more hits count as a pass.
	DefaultPolicyKeywords = []string{
		"política de privacidade",
		"termos de uso",
		"política de cookies",
	}

	// DefaultRiskPhrases are absolute/promissory expressions that ad
	// policies treat as hard violations.
	DefaultRiskPhrases = []string{
		"garantido",
		"100% aprovado",
		"aprovado na hora",
		"sem análise",
		"liberado instantaneamente",
		"sem burocracia",
		"crédito garantido",
		"ganhe dinheiro fácil",
		"resultado garantido",
	}

	// DefaultFinanceTerms are financial-product terms that are legitimate
	// in descriptive context but suspicious as offers on an accounting or
	// legal-practice site. They trigger a soft warning only.
	DefaultFinanceTerms = []string{
		"empréstimo",
		"crédito",
		"cartão",
		"aprovação de crédito",
		"financiamento",
		"investimento",
	}
)

// Detection patterns for the structural rules.
var (
	// taxIDPattern matches a Brazilian CNPJ, either formatted
	// (NN.NNN.NNN/NNNN-NN) or as a bare 14-digit run.
	taxIDPattern = regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b|\b\d{14}\b`)

	// phonePattern matches a Brazilian phone number: area code followed by
	// a 4-5 digit prefix and a 4 digit suffix.
	phonePattern = regexp.MustCompile(`\b\d{2}\s?\d{4,5}-\d{4}\b`)
)

// Input is what every rule sees: the normalized page text (original and
// pre-lowered once for the substring rules) and the source URL.
type Input struct {
	// Text is the normalized page text.
	Text string

	// LowerText is Text lowered once, shared by all substring rules.
	LowerText string

	// URL is the source site address.
	URL string
}

// Outcome is a single rule's verdict.
type Outcome struct {
	// Category is the tier the finding belongs to.
	Category model.Category

	// Message is the human-readable finding text.
	Message string

	// Silent suppresses the finding entirely. Used by the finance-terms
	// rule, which has no confirmation branch when nothing matches.
	Silent bool
}

// Rule is one entry of the ordered rule table.
type Rule struct {
	// Name identifies the rule for logging.
	Name string

	// Evaluate inspects the input and returns the rule's verdict.
	Evaluate func(in Input) Outcome
}

// httpsRule checks that the site is served over HTTPS.
func httpsRule() Rule {
	return Rule{
		Name: "https",
		Evaluate: func(in Input) Outcome {
			if u, err := url.Parse(in.URL); err == nil && strings.EqualFold(u.Scheme, "https") {
				return Outcome{Category: model.CategoryConfirmation, Message: "HTTPS ativo"}
			}
			return Outcome{Category: model.CategoryWarning, Message: "Site sem HTTPS (use HTTPS)."}
		},
	}
}

// taxIDRule checks that the page displays the company's CNPJ.
// The confirmation message carries the exact matched value so the operator
// can cross-check it against the registration certificate.
func taxIDRule() Rule {
	return Rule{
		Name: "tax_id",
		Evaluate: func(in Input) Outcome {
			if match := taxIDPattern.FindString(in.Text); match != "" {
				return Outcome{Category: model.CategoryConfirmation, Message: "CNPJ detectado: " + match}
			}
			return Outcome{Category: model.CategoryWarning, Message: "CNPJ não detectado no conteúdo do site."}
		},
	}
}

// contactRule checks for both an email marker and a phone-like number.
func contactRule() Rule {
	return Rule{
		Name: "contact",
		Evaluate: func(in Input) Outcome {
			if strings.Contains(in.Text, "@") && phonePattern.MatchString(in.Text) {
				return Outcome{Category: model.CategoryConfirmation, Message: "E-mail e telefone encontrados"}
			}
			return Outcome{Category: model.CategoryWarning, Message: "E-mail e/ou telefone não detectados com clareza."}
		},
	}
}

// policyLinksRule counts policy-page keywords; two or more pass.
func policyLinksRule(keywords []string) Rule {
	return Rule{
		Name: "policy_links",
		Evaluate: func(in Input) Outcome {
			hits := 0
			for _, k := range keywords {
				if strings.Contains(in.LowerText, k) {
					hits++
				}
			}
			if hits >= 2 {
				return Outcome{Category: model.CategoryConfirmation, Message: "Políticas (Privacidade/Termos/Cookies) detectadas"}
			}
			return Outcome{Category: model.CategoryWarning, Message: "Links de políticas não detectados com clareza."}
		},
	}
}

// riskPhrasesRule scans for promissory phrases. All hits are reported as a
// single risk entry so one careless page costs 20 points, not 180.
func riskPhrasesRule(phrases []string) Rule {
	return Rule{
		Name: "risk_phrases",
		Evaluate: func(in Input) Outcome {
			found := matchSubstrings(in.LowerText, phrases)
			if len(found) > 0 {
				return Outcome{
					Category: model.CategoryRisk,
					Message:  "Palavras de risco detectadas: " + strings.Join(found, ", "),
				}
			}
			return Outcome{Category: model.CategoryConfirmation, Message: "Sem termos de promessa ou risco (detectados)"}
		},
	}
}

// financeTermsRule scans for financial-product terms. Hits produce a soft
// warning; absence is a silent pass with no confirmation branch.
func financeTermsRule(terms []string) Rule {
	return Rule{
		Name: "finance_terms",
		Evaluate: func(in Input) Outcome {
			found := matchSubstrings(in.LowerText, terms)
			if len(found) > 0 {
				return Outcome{
					Category: model.CategoryWarning,
					Message:  "Termos financeiros detectados: " + strings.Join(found, ", ") + " (verifique contexto)",
				}
			}
			return Outcome{Silent: true}
		},
	}
}

// matchSubstrings returns the list entries contained in the lowered text,
// preserving list order.
func matchSubstrings(lowerText string, list []string) []string {
	var found []string
	for _, entry := range list {
		if strings.Contains(lowerText, entry) {
			found = append(found, entry)
		}
	}
	return found
}
