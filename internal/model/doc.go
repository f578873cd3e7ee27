// Package model defines the core data structures used throughout adsappeal.
//
// This package contains the following main types:
//   - ComplianceReport: The result of analyzing a site's compliance posture
//   - BusinessProfile: User-supplied identity data for the advertiser
//   - AppealRecord: The fully assembled appeal packet
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scorer, appeal, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// file download.
package model
