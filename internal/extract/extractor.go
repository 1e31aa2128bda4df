package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/common"
)

// Config selects the external binaries and OCR behavior.
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	EnableOCR bool // attempt OCR when every text strategy comes back empty
}

// pdfStrategy is one attempt at getting text out of a PDF. Strategies are
// fault-isolated: a failure or empty result falls through to the next one.
type pdfStrategy struct {
	method constants.ExtractionMethod
	run    func(ctx context.Context, path string) (text string, pages int, warnings []string, err error)
}

// Extractor implements TextExtractor over PDF and DOCX files.
type Extractor struct {
	cfg        Config
	runner     Runner
	logger     *slog.Logger
	strategies []pdfStrategy // fixed priority order, probed once at construction
	ocrOK      bool
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	return newExtractor(cfg, execRunner{}, logger)
}

func newExtractor(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}

	e := &Extractor{cfg: cfg, runner: runner, logger: logger}

	// Probe availability once; the strategy list is fixed for the
	// extractor's lifetime. pdftotext covers primary and tertiary,
	// the pure-Go reader is always available as secondary.
	havePdftotext := false
	if _, err := runner.LookPath(cfg.Pdftotext); err == nil {
		havePdftotext = true
	} else {
		logger.Warn("pdftotext not found, layout strategies disabled", "binary", cfg.Pdftotext)
	}

	if havePdftotext {
		e.strategies = append(e.strategies, pdfStrategy{constants.MethodPrimary, e.pdfToTextLayout})
	}
	e.strategies = append(e.strategies, pdfStrategy{constants.MethodSecondary, e.pdfPageText})
	if havePdftotext {
		e.strategies = append(e.strategies, pdfStrategy{constants.MethodTertiary, e.pdfToTextRaw})
	}

	if cfg.EnableOCR {
		_, errPpm := runner.LookPath(cfg.Pdftoppm)
		_, errTess := runner.LookPath(cfg.Tesseract)
		e.ocrOK = errPpm == nil && errTess == nil
		if !e.ocrOK {
			logger.Warn("ocr requested but binaries missing, ocr disabled",
				"pdftoppm", cfg.Pdftoppm, "tesseract", cfg.Tesseract)
		}
	}

	return e
}

// Extract picks a strategy chain based on the declared format.
// It never fails on well-formed input; worst case is empty text.
func (e *Extractor) Extract(ctx context.Context, path string, format constants.Format) (ExtractionResult, error) {
	start := time.Now()
	e.logger.Debug("starting text extraction", "path", path, "format", format)

	switch format {
	case constants.PDF:
		res := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, nil
	case constants.DOCX:
		res := e.extractDOCX(path)
		res.Duration = time.Since(start)
		return res, nil
	default:
		return ExtractionResult{}, common.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("unsupported format: %q", format), common.ErrUnsupportedFormat)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) ExtractionResult {
	res := ExtractionResult{Format: constants.PDF, Method: constants.MethodNone}

	for _, s := range e.strategies {
		text, pages, warns, err := e.tryStrategy(ctx, s, path)
		res.Warnings = append(res.Warnings, warns...)
		if err != nil {
			e.logger.Warn("pdf strategy failed", "path", path, "method", s.method, "error", err)
			continue
		}
		if isBlank(text) {
			e.logger.Debug("pdf strategy returned no text", "path", path, "method", s.method)
			continue
		}
		res.Text = text
		res.Pages = pages
		res.Method = s.method
		e.logger.Debug("pdf strategy succeeded", "path", path, "method", s.method, "chars", len(text))
		return res
	}

	if e.ocrOK {
		text, pages, warns, err := e.pdfToOCR(ctx, path)
		res.Warnings = append(res.Warnings, warns...)
		if err != nil {
			e.logger.Warn("pdf ocr failed", "path", path, "error", err)
		} else if !isBlank(text) {
			res.Text = text
			res.Pages = pages
			res.Method = constants.MethodOCR
			return res
		}
	}

	// Nothing recoverable; likely a scanned document. Not an error.
	e.logger.Info("no text extracted from pdf", "path", path)
	return res
}

// tryStrategy runs one strategy with panic isolation so a misbehaving
// parser cannot abort evaluation of the remaining strategies.
func (e *Extractor) tryStrategy(ctx context.Context, s pdfStrategy, path string) (text string, pages int, warnings []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("strategy %s panicked: %v", s.method, r)
		}
	}()
	return s.run(ctx, path)
}

func isBlank(s string) bool {
	return ExtractionResult{Text: s}.Empty()
}
