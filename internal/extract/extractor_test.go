package extract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirestack/resume-intake/constants"
)

// stubRunner fakes the external binaries. Behavior is keyed on the
// command name; onRun hooks let a test fabricate side effects like the
// PNG files pdftoppm would write.
type stubRunner struct {
	missing map[string]bool
	outputs map[string]string
	errs    map[string]error
	onRun   func(name string, args []string)
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if s.onRun != nil {
		s.onRun(name, args)
	}
	if err := s.errs[name]; err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(s.outputs[name]), nil, nil
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if s.missing[name] {
		return "", errors.New("not found")
	}
	return "/usr/bin/" + name, nil
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := newExtractor(Config{}, &stubRunner{}, nil)
	_, err := e.Extract(context.Background(), "/in/file.txt", constants.Format("TXT"))
	assert.Error(t, err)
}

func TestExtractPDFPrimaryWins(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{
		"pdftotext": "John Smith\nPython developer",
	}}
	e := newExtractor(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/in/cv.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodPrimary, res.Method)
	assert.Contains(t, res.Text, "John Smith")
	assert.Equal(t, 1, res.Pages)
}

func TestExtractPDFFallsThroughToTertiary(t *testing.T) {
	// primary returns whitespace, the pure-Go reader fails on the bogus
	// path, -raw succeeds. The runner serves both pdftotext invocations,
	// so flip the output after the first call.
	r := &stubRunner{outputs: map[string]string{"pdftotext": "   \n"}}
	first := true
	r.onRun = func(name string, args []string) {
		if name == "pdftotext" && !first {
			r.outputs["pdftotext"] = "raw text content"
		}
		first = false
	}
	e := newExtractor(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/nonexistent/cv.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodTertiary, res.Method)
	assert.Equal(t, "raw text content", res.Text)
}

func TestExtractPDFDegradedWhenEverythingFails(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"pdftotext": errors.New("exit 1")}}
	e := newExtractor(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/nonexistent/cv.pdf", constants.PDF)
	require.NoError(t, err, "empty extraction is degraded, not an error")
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.True(t, res.Empty())
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractPDFOCRFallback(t *testing.T) {
	r := &stubRunner{
		errs:    map[string]error{"pdftotext": errors.New("exit 1")},
		outputs: map[string]string{"tesseract": "scanned resume text"},
	}
	// pdftoppm "renders" one page by creating the file the glob expects
	r.onRun = func(name string, args []string) {
		if name == "pdftoppm" {
			prefix := args[len(args)-1]
			_ = os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)
		}
	}
	e := newExtractor(Config{EnableOCR: true}, r, nil)

	res, err := e.Extract(context.Background(), "/nonexistent/cv.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodOCR, res.Method)
	assert.Equal(t, "scanned resume text", res.Text)
	assert.Equal(t, 1, res.Pages)
}

func TestExtractOCRSkippedWhenBinariesMissing(t *testing.T) {
	r := &stubRunner{
		missing: map[string]bool{"tesseract": true},
		errs:    map[string]error{"pdftotext": errors.New("exit 1")},
	}
	e := newExtractor(Config{EnableOCR: true}, r, nil)

	res, err := e.Extract(context.Background(), "/nonexistent/cv.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodNone, res.Method)
	for _, c := range r.calls {
		assert.NotEqual(t, "pdftoppm", c, "ocr must not run without tesseract")
	}
}

func TestExtractPdftotextMissingSkipsLayoutStrategies(t *testing.T) {
	r := &stubRunner{missing: map[string]bool{"pdftotext": true}}
	e := newExtractor(Config{}, r, nil)

	// only the pure-Go secondary remains; the bogus path makes it fail
	res, err := e.Extract(context.Background(), "/nonexistent/cv.pdf", constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.Empty(t, r.calls, "no external binary should have been invoked")
}

func TestExtractDOCXMissingFileDegrades(t *testing.T) {
	e := newExtractor(Config{}, &stubRunner{}, nil)

	res, err := e.Extract(context.Background(), "/nonexistent/cv.docx", constants.DOCX)
	require.NoError(t, err)
	assert.Equal(t, constants.MethodNone, res.Method)
	assert.True(t, res.Empty())
	assert.NotEmpty(t, res.Warnings)
}

func TestWalkDocumentXML(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Smith</w:t></w:r></w:p>
    <w:p><w:r><w:t>john@x.com</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Skills</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Python, Django</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p><w:r><w:t>5 years experience</w:t></w:r></w:p>
  </w:body>
</w:document>`

	paragraphs, cells, err := walkDocumentXML(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "john@x.com", "5 years experience"}, paragraphs)
	assert.Equal(t, []string{"Skills", "Python, Django"}, cells)

	// paragraphs precede table cells in the joined text
	joined := strings.Join(append(paragraphs, cells...), "\n")
	assert.True(t, strings.Index(joined, "5 years experience") < strings.Index(joined, "Skills"))
}
