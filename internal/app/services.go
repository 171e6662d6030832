package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/abhisek/eduvision/internal/config"
	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/llm"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/pdfexport"
	"github.com/abhisek/eduvision/internal/planner"
	"github.com/abhisek/eduvision/internal/store"
)

// Services are the collaborators that need a configured provider. They
// are shared by the TUI and the headless generate command.
type Services struct {
	Providers *llm.Providers
	Planner   *planner.Service
	Images    *images.Pipeline
	PDF       *pdfexport.Exporter
}

// NewServices builds the providers from cfg and wires the planner, the
// image pipeline and the PDF exporter on top of them. events may be nil.
func NewServices(ctx context.Context, cfg *config.Config, events store.EventRepo, log *logger.Logger) (*Services, error) {
	if log == nil {
		log = logger.Nop()
	}

	providers, err := llm.NewProviders(ctx, cfg.LLM(), events, log)
	if err != nil {
		return nil, fmt.Errorf("build providers: %w", err)
	}

	dataDir, err := cfg.ResolvedDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	font := pdfexport.FontSource{
		Path:     cfg.PDF.FontPath,
		URL:      cfg.PDF.FontURL,
		CacheDir: filepath.Join(dataDir, "fonts"),
	}

	return &Services{
		Providers: providers,
		Planner:   planner.NewService(providers.Fast, providers.Plan, events, planner.DefaultConfig(), log),
		Images: images.NewPipeline(providers.Image, images.Config{
			Size:        cfg.Images.Size,
			Concurrency: cfg.Images.Concurrency,
		}, log),
		PDF: pdfexport.NewExporter(font, cfg.OutputDir, log),
	}, nil
}
