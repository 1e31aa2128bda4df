package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hirestack/resume-intake/constants"
	"github.com/hirestack/resume-intake/internal/extract"
	"github.com/hirestack/resume-intake/internal/fields"
	"github.com/hirestack/resume-intake/internal/pipeline"
)

// resume-batch categorizes every resume under a directory without a
// database, writing one JSON record per line. Documents are independent,
// so they are processed concurrently; a failing document increments the
// error counter and never aborts the batch.
func main() {
	var (
		dir     = flag.String("dir", "", "directory of resumes to process (required)")
		out     = flag.String("out", "", "output JSONL path (defaults to stdout)")
		workers = flag.Int("workers", 4, "concurrent documents")
		ocr     = flag.Bool("ocr", true, "attempt OCR for scanned PDFs")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("--dir is required")
		os.Exit(1)
	}
	if *workers < 1 {
		*workers = 1
	}

	var w *bufio.Writer
	if *out == "" {
		w = bufio.NewWriter(os.Stdout)
	} else {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("create output file", "path", *out, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Error("close output file", "error", err)
			}
		}()
		w = bufio.NewWriter(f)
	}

	ctx := context.Background()
	extractor := extract.NewExtractor(extract.Config{EnableOCR: *ocr}, logger)
	core := pipeline.New(logger, extractor, fields.NewExtractor(nil))

	var paths []string
	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn("walk error", "path", path, "error", walkErr)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.MapExtToFormat(filepath.Ext(path)) != "" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("walk failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("batch starting", "dir", *dir, "files", len(paths), "workers", *workers)

	var (
		mu       sync.Mutex
		failures atomic.Uint32
		degraded atomic.Uint32
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, path := range paths {
		g.Go(func() error {
			format := constants.MapExtToFormat(filepath.Ext(path))
			rec, err := core.Process(ctx, path, format)
			if err != nil {
				logger.Error("document failed", "path", path, "error", err)
				failures.Add(1)
				return nil // isolate per-document failures
			}
			if rec.Degraded {
				degraded.Add(1)
			}
			line, err := json.Marshal(rec)
			if err != nil {
				failures.Add(1)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			if _, err := w.Write(append(line, '\n')); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("batch aborted", "error", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		logger.Error("flush output", "error", err)
		os.Exit(1)
	}

	logger.Info("batch finished",
		"files", len(paths),
		"failed", failures.Load(),
		"degraded", degraded.Load(),
	)
	if failures.Load() > 0 {
		os.Exit(3)
	}
}
