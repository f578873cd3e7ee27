// Package main provides the entry point for the adsappeal CLI.
//
// adsappeal helps a business contest a Google Ads account suspension:
// it audits the advertised site against transparency heuristics and
// assembles the appeal packet (form answers, PDF and JSON) from the
// business profile and the audit findings.
//
// Usage:
//
//	adsappeal analyze <url>
//	adsappeal generate
//
// See --help for all available options.
package main

// main is the entry point for adsappeal.
func main() {
	Execute()
}
