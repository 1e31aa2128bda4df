package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/extract"
	"github.com/hirestack/resume-intake/internal/fields"
	"github.com/hirestack/resume-intake/internal/pipeline"
)

// runparse processes a single resume without a database: the record is
// printed to stdout as JSON. Useful for smoke-testing extraction.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runparse <resume.pdf|resume.docx>")
		os.Exit(2)
	}
	path := os.Args[1]

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	extractor := extract.NewExtractor(extract.Config{EnableOCR: true}, logger)
	core := pipeline.New(logger, extractor, fields.NewExtractor(nil))

	rec, err := core.Process(ctx, path, format)
	if err != nil {
		logger.Error("processing failed", "path", path, "error", err)
		os.Exit(1)
	}
	if err := pipeline.ValidateRecord(rec); err != nil {
		logger.Error("record validation failed", "path", path, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("marshal record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
