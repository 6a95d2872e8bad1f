// Command gander-source is a demo log endpoint for the gander dashboard.
//
// It serves deterministic sample entries over HTTP so the dashboard can
// be pointed at a live endpoint without a real ingestion backend. The
// same service and date always return the same entries.
//
// Point a gander service at http://<addr>/api/logs/<service>.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"github.com/ternarybob/banner"

	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/sourcegen"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:8790", "listen address")
	count := flag.Int("count", 0, "entries per service per day (0 picks a per-day count)")
	latency := flag.Duration("latency", 0, "artificial delay before each response")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	logFile := flag.String("log-file", "gander-source.log", "log file path (empty disables file logging)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gander-source %s\n", version)
		return 0
	}

	banner.Print("Gander Source", version)
	logger := newLogger(*logLevel, *logFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:         *addr,
		Handler:      newEngine(logger, *count, *latency),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	logger.Info().Str("addr", *addr).Msg("demo log source listening")
	logger.Info().Str("endpoint", "http://"+*addr+"/api/logs/gateway").Msg("configure a gander service against an endpoint like this")

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server failed")
		fmt.Fprintf(os.Stderr, "gander-source: %v\n", err)
		return 1
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("shutdown incomplete")
		fmt.Fprintf(os.Stderr, "gander-source: %v\n", err)
		return 1
	}
	logger.Info().Msg("stopped")
	return 0
}

// newEngine builds the gin router. Routes:
//
//	GET /api/logs/:service?date=YYYY-MM-DD  entries for the service and day
//	GET /api/services                       service names this server synthesizes
//	GET /healthz                            liveness
func newEngine(logger arbor.ILogger, count int, latency time.Duration) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.GET("/api/logs/:service", func(c *gin.Context) {
		service := c.Param("service")
		raw := c.Query("date")
		day := time.Now().UTC()
		if raw != "" {
			parsed, err := time.ParseInLocation(logsource.DateLayout, raw, time.UTC)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", raw)})
				return
			}
			day = parsed
		}

		if latency > 0 {
			time.Sleep(latency)
		}

		entries := sourcegen.Generate(service, day, count)
		logger.Debug().
			Str("service", service).
			Str("date", day.Format(logsource.DateLayout)).
			Int("entries", len(entries)).
			Msg("served logs")
		c.JSON(http.StatusOK, entries)
	})

	engine.GET("/api/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, sourcegen.Services())
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return engine
}

func newLogger(level, file string) arbor.ILogger {
	logger := arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
		TextOutput: true,
	})
	if file != "" {
		logger = logger.WithFileWriter(models.WriterConfiguration{
			Type:       models.LogWriterTypeFile,
			FileName:   file,
			TimeFormat: "15:04:05",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 2,
			TextOutput: true,
		})
	}
	return logger.WithLevelFromString(level)
}
