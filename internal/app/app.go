package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"

	"github.com/calvale/gander/internal/config"
	"github.com/calvale/gander/internal/explain"
	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/prefs"
	"github.com/calvale/gander/internal/ui"
	"github.com/calvale/gander/internal/viewlink"
)

// Options configure the gander application.
type Options struct {
	ConfigPath string // empty uses ~/.config/gander/config.toml
	DataDir    string // overrides the configured data directory
	Link       string // gander://logs deep link; wins over Date and Service
	Date       string // "today" or an ISO day
	Service    string // service name, matched against the configured list
}

// Run boots the dashboard and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	initial, err := initialView(opts.Link, opts.Date, opts.Service)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logger := newLogger(cfg)

	// A broken preference database should not keep the dashboard from
	// starting; edits just stop surviving restarts.
	var store prefs.Store
	if persisted, err := prefs.OpenBadger(cfg.PrefsDir()); err != nil {
		logger.Warn().Err(err).
			Str("dir", cfg.PrefsDir()).
			Msg("preference store unavailable, preferences will not persist")
		store = prefs.NewMemoryStore()
	} else {
		store = persisted
		go func() {
			if err := persisted.Maintain(); err != nil {
				logger.Warn().Err(err).Msg("preference store maintenance failed")
			}
		}()
	}
	defer store.Close()

	schema := prefs.DefaultSchema()

	logger.Info().
		Str("data_dir", cfg.DataDir).
		Str("service", initial.Service).
		Str("date", initial.Date).
		Msg("starting dashboard")

	return ui.Run(ui.Options{
		Context: ctx,
		Store:   store,
		Schema:  schema,
		Source: func(endpoint string) (logsource.Source, error) {
			return logsource.ForEndpoint(endpoint, logsource.Options{
				Timeout:       cfg.SourceTimeout,
				SampleLatency: cfg.SampleLatency,
				FileTailLines: cfg.FileTailLines,
			})
		},
		// Built per request so model and credential edits in settings
		// apply without a restart.
		Explainer: func() explain.Explainer {
			return explain.New(explain.Config{
				Model:      schema.AIModel.Get(store),
				Credential: schema.AICredential.Get(store),
				Timeout:    cfg.AITimeout,
			})
		},
		Config:  cfg,
		Logger:  logger,
		Initial: initial,
	})
}

// newLogger builds the file-backed diagnostic logger. The TUI owns the
// terminal, so nothing may write to stdout while the dashboard runs.
func newLogger(cfg config.Config) arbor.ILogger {
	return arbor.NewLogger().
		WithFileWriter(models.WriterConfiguration{
			Type:       models.LogWriterTypeFile,
			FileName:   cfg.LogPath(),
			TimeFormat: "15:04:05",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 2,
			TextOutput: true,
		}).
		WithLevelFromString(cfg.LogLevel)
}

// initialView resolves what the dashboard shows first.
func initialView(link, date, service string) (viewlink.View, error) {
	if strings.TrimSpace(link) != "" {
		view, err := viewlink.ParseLink(link)
		if err != nil {
			return viewlink.View{}, fmt.Errorf("resolve -link: %w", err)
		}
		return view, nil
	}
	return viewlink.View{Date: date, Service: service}, nil
}
