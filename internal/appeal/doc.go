// Package appeal assembles the suspension-appeal packet from the business
// profile and the site compliance report.
//
// The builder is deterministic given identical inputs and the current date:
// it interpolates the profile into fixed Portuguese boilerplate, selects the
// company description by sector, and copies the compliance findings verbatim.
// It performs no I/O and never fails.
package appeal
