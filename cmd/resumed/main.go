package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/hirestack/resume-intake/gen/proto/resumes/v1"
	"github.com/hirestack/resume-intake/internal/async"
	"github.com/hirestack/resume-intake/internal/common"
	"github.com/hirestack/resume-intake/internal/export"
	"github.com/hirestack/resume-intake/internal/extract"
	"github.com/hirestack/resume-intake/internal/fields"
	"github.com/hirestack/resume-intake/internal/ingest"
	"github.com/hirestack/resume-intake/internal/pipeline"
	repo "github.com/hirestack/resume-intake/internal/repository"
	svc "github.com/hirestack/resume-intake/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	filesRepo := repo.NewResumeFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	candidatesRepo := repo.NewCandidateRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
		EnableOCR:     cfg.Extract.EnableOCR,
	}, logger)

	core := pipeline.New(logger, extractor, fields.NewExtractor(nil))
	extractStage := pipeline.NewExtractStage(filesRepo, jobsRepo, extractor, logger)
	analyzeStage := pipeline.NewAnalyzeStage(logger, core, jobsRepo, candidatesRepo, categoriesRepo)
	processor := pipeline.NewProcessor(logger, extractStage, analyzeStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	ingestionService := svc.NewIngestionService(ingestor, processor, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	candidatesService := svc.NewCandidatesService(candidatesRepo, categoriesRepo, logger)
	v1.RegisterCandidatesServiceServer(grpcServer, candidatesService)

	exportService := export.NewService(entc, candidatesRepo, filesRepo, logger)
	exportServer := svc.NewExportServer(exportService, logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Optional: watch directories and feed discovered resumes to the queue.
	if len(cfg.Watch.Roots) > 0 {
		startWatchLoop(ctx, cfg, ingestor, queue, logger)
	}

	logger.Info("resumed listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func startWatchLoop(ctx context.Context, cfg *common.Config, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Watch.Roots,
		InitialScan: true,
		Debounce:    cfg.Watch.Debounce,
	})
	if err != nil {
		logger.Error("failed to start directory watcher", "roots", cfg.Watch.Roots, "error", err)
		return
	}
	logger.Info("watching directories for resumes", "roots", cfg.Watch.Roots)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-evCh:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()})
			case err, ok := <-errCh:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
			}
		}
	}()
}
