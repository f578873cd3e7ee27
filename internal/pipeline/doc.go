// Package pipeline orchestrates the site analysis as an explicit sequence
// of steps: fetch (or PDF extraction), normalization and scoring.
//
// Each user action runs the pipeline to completion synchronously. The
// accumulated Analysis value carries the data between steps and out to the
// caller, which threads the resulting ComplianceReport explicitly into the
// appeal builder. There is no shared mutable state between invocations.
package pipeline
