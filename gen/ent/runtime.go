// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/db/ent/schema"
	"github.com/hirestack/resume-intake/gen/ent/candidate"
	"github.com/hirestack/resume-intake/gen/ent/category"
	"github.com/hirestack/resume-intake/gen/ent/parsejob"
	"github.com/hirestack/resume-intake/gen/ent/resumefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescName is the schema descriptor for name field.
	candidateDescName := candidateFields[3].Descriptor()
	// candidate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	candidate.NameValidator = candidateDescName.Validators[0].(func(string) error)
	// candidateDescExperienceYears is the schema descriptor for experience_years field.
	candidateDescExperienceYears := candidateFields[7].Descriptor()
	// candidate.DefaultExperienceYears holds the default value on creation for the experience_years field.
	candidate.DefaultExperienceYears = candidateDescExperienceYears.Default.(float64)
	// candidate.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	candidate.ExperienceYearsValidator = candidateDescExperienceYears.Validators[0].(func(float64) error)
	// candidateDescDegraded is the schema descriptor for degraded field.
	candidateDescDegraded := candidateFields[9].Descriptor()
	// candidate.DefaultDegraded holds the default value on creation for the degraded field.
	candidate.DefaultDegraded = candidateDescDegraded.Default.(bool)
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[10].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[11].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// candidateDescID is the schema descriptor for id field.
	candidateDescID := candidateFields[0].Descriptor()
	// candidate.DefaultID holds the default value on creation for the id field.
	candidate.DefaultID = candidateDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[3].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[4].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	resumefileFields := schema.ResumeFile{}.Fields()
	_ = resumefileFields
	// resumefileDescSourcePath is the schema descriptor for source_path field.
	resumefileDescSourcePath := resumefileFields[1].Descriptor()
	// resumefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	resumefile.SourcePathValidator = resumefileDescSourcePath.Validators[0].(func(string) error)
	// resumefileDescContentHash is the schema descriptor for content_hash field.
	resumefileDescContentHash := resumefileFields[2].Descriptor()
	// resumefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	resumefile.ContentHashValidator = resumefileDescContentHash.Validators[0].(func([]byte) error)
	// resumefileDescFilename is the schema descriptor for filename field.
	resumefileDescFilename := resumefileFields[3].Descriptor()
	// resumefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	resumefile.FilenameValidator = resumefileDescFilename.Validators[0].(func(string) error)
	// resumefileDescFileExt is the schema descriptor for file_ext field.
	resumefileDescFileExt := resumefileFields[4].Descriptor()
	// resumefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	resumefile.FileExtValidator = resumefileDescFileExt.Validators[0].(func(string) error)
	// resumefileDescFileSize is the schema descriptor for file_size field.
	resumefileDescFileSize := resumefileFields[5].Descriptor()
	// resumefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	resumefile.FileSizeValidator = resumefileDescFileSize.Validators[0].(func(int) error)
	// resumefileDescUploadedAt is the schema descriptor for uploaded_at field.
	resumefileDescUploadedAt := resumefileFields[6].Descriptor()
	// resumefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	resumefile.DefaultUploadedAt = resumefileDescUploadedAt.Default.(func() time.Time)
	// resumefileDescID is the schema descriptor for id field.
	resumefileDescID := resumefileFields[0].Descriptor()
	// resumefile.DefaultID holds the default value on creation for the id field.
	resumefile.DefaultID = resumefileDescID.Default.(func() uuid.UUID)
}
