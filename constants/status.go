package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning    JobStatus = "RUNNING"    // in progress
	JobStatusTextOK     JobStatus = "TEXT_OK"    // stage 1 completed (text extracted)
	JobStatusClassified JobStatus = "CLASSIFIED" // stage 2 completed (fields extracted + categorized)
	JobStatusDegraded   JobStatus = "DEGRADED"   // no text recoverable; minimal record written
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// ExtractionMethod identifies which strategy produced the raw text.
type ExtractionMethod string

const (
	MethodPrimary   ExtractionMethod = "primary"   // pdftotext -layout; also the single DOCX walk
	MethodSecondary ExtractionMethod = "secondary" // ledongthuc/pdf page text
	MethodTertiary  ExtractionMethod = "tertiary"  // pdftotext -raw
	MethodOCR       ExtractionMethod = "ocr"       // pdftoppm + tesseract
	MethodNone      ExtractionMethod = "none"      // nothing recoverable
)
