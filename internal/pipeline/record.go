package pipeline

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hirestack/resume-intake/internal/common"
)

// Record is the full outcome of processing one resume: the extracted
// facts, the assigned category, and extraction diagnostics.
type Record struct {
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       string   `json:"education,omitempty"`
	Category        string   `json:"category"`
	SourceFormat    string   `json:"source_format"`
	Method          string   `json:"extraction_method"`
	Degraded        bool     `json:"degraded,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "skills", "experience_years", "category", "source_format", "extraction_method"],
  "properties": {
    "name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "experience_years": {"type": "number", "minimum": 0},
    "education": {"type": "string"},
    "category": {"type": "string", "minLength": 1},
    "source_format": {"type": "string", "enum": ["PDF", "DOCX"]},
    "extraction_method": {"type": "string", "enum": ["primary", "secondary", "tertiary", "ocr", "none"]},
    "degraded": {"type": "boolean"},
    "warnings": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

var compiledRecordSchema = jsonschema.MustCompileString("record.schema.json", recordSchema)

// ValidateRecord checks a record against the JSON schema. Used before
// persistence and by the CLI before emitting output.
func ValidateRecord(rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return common.WrapError(err, "marshal record")
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return common.WrapError(err, "unmarshal record")
	}
	if err := compiledRecordSchema.Validate(doc); err != nil {
		return common.NewAppError("VALIDATION", "record failed schema validation", err)
	}
	return nil
}
