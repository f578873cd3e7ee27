// Package scorer rates a site's adherence to advertising-policy
// transparency norms on a 0-100 scale.
//
// The scorer evaluates a fixed, ordered table of heuristic rules over the
// normalized page text and the source URL. Each rule contributes at most
// one finding to exactly one of three tiers (confirmation, warning, risk);
// only warnings and risks lower the score.
//
// Design decision: Rules are declared as an ordered list of descriptors
// rather than inline conditionals so the rule set is extensible (the word
// lists can be overridden from the profile file) without touching the
// evaluation control flow. Rule order is part of the report's observable
// contract: findings appear in the order rules ran.
package scorer
