package report

import "regexp"

// Output filename prefixes and extensions for the generated downloads.
const (
	formDataPrefix = "FormData_"
	appealPrefix   = "Contestacao_"
	jsonExt        = ".json"
	pdfExt         = ".pdf"

	// maxFilenameLen bounds the sanitized company-name part so the full
	// filename stays well under common filesystem limits.
	maxFilenameLen = 100
)

// unsafeFilenameChars matches runs of characters outside the portable
// filename alphabet [A-Za-z0-9_.-].
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename replaces every run of characters outside [A-Za-z0-9_.-]
// with a single underscore and truncates the result to 100 bytes.
// Alphanumeric runs of the input are preserved.
func SanitizeFilename(name string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(sanitized) > maxFilenameLen {
		sanitized = sanitized[:maxFilenameLen]
	}
	return sanitized
}

// FormDataFilename returns the JSON download filename for a company.
func FormDataFilename(legalName string) string {
	return formDataPrefix + SanitizeFilename(legalName) + jsonExt
}

// AppealFilename returns the PDF download filename for a company.
func AppealFilename(legalName string) string {
	return appealPrefix + SanitizeFilename(legalName) + pdfExt
}

// AppealTitle returns the printable document title for a company.
func AppealTitle(legalName string) string {
	return appealPrefix + legalName
}
