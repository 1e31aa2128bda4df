package constants

import "strings"

// Format is the declared document format for a resume file.
type Format string

const (
	PDF  Format = "PDF"
	DOCX Format = "DOCX"
)

// FileTypes holds the allowed values for the format field in ParseJob.
var FileTypes = []string{string(PDF), string(DOCX)}

// AllowedExtensions holds the default allowed file extensions for resume ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a Format.
// Returns "" for anything outside {pdf, docx}.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	default:
		return ""
	}
}
