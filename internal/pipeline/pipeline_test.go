package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/extract"
)

type stubExtractor struct {
	res extract.ExtractionResult
	err error
}

func (s stubExtractor) Extract(_ context.Context, _ string, _ constants.Format) (extract.ExtractionResult, error) {
	return s.res, s.err
}

func TestProcessFullPath(t *testing.T) {
	tx := stubExtractor{res: extract.ExtractionResult{
		Text:   "John Smith\njohn@x.com\n5 years experience with Python and Django",
		Format: constants.DOCX,
		Method: constants.MethodPrimary,
	}}
	p := New(nil, tx, nil)

	rec, err := p.Process(context.Background(), "/in/john_smith.docx", constants.DOCX)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "john@x.com", rec.Email)
	assert.ElementsMatch(t, []string{"python", "django"}, rec.Skills)
	assert.InDelta(t, 5.0, rec.ExperienceYears, 0.001)
	assert.Equal(t, "Senior Python Developer", rec.Category)
	assert.False(t, rec.Degraded)
	assert.NoError(t, ValidateRecord(rec))
}

func TestProcessDegradedBranch(t *testing.T) {
	tx := stubExtractor{res: extract.ExtractionResult{
		Text:   "  \n\t ",
		Format: constants.PDF,
		Method: constants.MethodNone,
	}}
	p := New(nil, tx, nil)

	rec, err := p.Process(context.Background(), "/in/scanned_resume.pdf", constants.PDF)
	require.NoError(t, err)

	assert.True(t, rec.Degraded)
	assert.Equal(t, constants.CategoryUnknown, rec.Category)
	assert.Equal(t, "scanned_resume", rec.Name, "name falls back to the filename stem")
	assert.Empty(t, rec.Skills)
	assert.Zero(t, rec.ExperienceYears)
	assert.NoError(t, ValidateRecord(rec))
}

func TestProcessNameFallback(t *testing.T) {
	tx := stubExtractor{res: extract.ExtractionResult{
		Text:   "RESUME\n1234567890\nemail: a@b.co\nSKILLS SECTION\nPython developer with 3 years",
		Format: constants.PDF,
		Method: constants.MethodSecondary,
	}}
	p := New(nil, tx, nil)

	rec, err := p.Process(context.Background(), "/in/jane-doe.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", rec.Name)
	assert.Equal(t, "a@b.co", rec.Email)
}

func TestProcessPropagatesExtractorError(t *testing.T) {
	tx := stubExtractor{err: assert.AnError}
	p := New(nil, tx, nil)

	_, err := p.Process(context.Background(), "/in/x.pdf", constants.PDF)
	assert.Error(t, err)
}

func TestValidateRecordRejectsBadRecord(t *testing.T) {
	rec := Record{
		Name:         "x",
		Skills:       []string{},
		Category:     "",
		SourceFormat: "PDF",
		Method:       "primary",
	}
	assert.Error(t, ValidateRecord(rec), "empty category must fail validation")

	rec.Category = "Fresher"
	rec.SourceFormat = "TXT"
	assert.Error(t, ValidateRecord(rec), "unknown source format must fail validation")
}
