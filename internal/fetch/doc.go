// Package fetch retrieves the raw text inputs for a compliance analysis:
// either the HTML of the advertised site over HTTP, or the text of an
// exported site PDF when the site cannot be reached.
//
// Both paths share the same failure semantics: any error is reported to the
// caller, who treats the site text as empty and continues. There is no
// retry policy.
package fetch
