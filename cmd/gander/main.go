// Command gander is a terminal dashboard for browsing service logs.
//
// It opens a full-screen table of log entries for a chosen service and
// day, with filtering, sorting, pagination, and AI-assisted explanation
// of individual entries. Display preferences persist across runs in a
// local key/value store.
//
// Usage:
//
//	gander [flags]
//
// Flags:
//
//	-config string   path to a TOML config file
//	-data string     data directory, overrides the configured one
//	-date string     day to load, YYYY-MM-DD or "today" (default "today")
//	-service string  service to select at startup
//	-link string     gander://logs link to open, overrides -date and -service
//	-version         print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// The table renders timestamps in user-picked zones; embed the
	// zone database so lookups work on hosts without one.
	_ "time/tzdata"

	"github.com/calvale/gander/internal/app"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file")
	dataDir := flag.String("data", "", "data directory (overrides config)")
	date := flag.String("date", "today", "day to load (YYYY-MM-DD or \"today\")")
	service := flag.String("service", "", "service to select at startup")
	link := flag.String("link", "", "gander://logs link to open")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gander %s\n", version)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{
		ConfigPath: *configPath,
		DataDir:    *dataDir,
		Link:       *link,
		Date:       *date,
		Service:    *service,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "gander: %v\n", err)
		return 1
	}
	return 0
}
