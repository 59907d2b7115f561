package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/we-the-people/cliparse"
	"github.com/danielhkuo/we-the-people/handlers"
	"github.com/danielhkuo/we-the-people/issues"
	"github.com/danielhkuo/we-the-people/middleware"
	"github.com/danielhkuo/we-the-people/router"
	"github.com/danielhkuo/we-the-people/store"
)

const (
	shutdownTimeout = 10 * time.Second
	adSweepInterval = time.Minute
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load seed issues
	seed, err := issues.LoadSeed(cfg.IssuesFile)
	if err != nil {
		slog.Error("seed load failed", "error", err)
		os.Exit(1)
	}

	// Connect the datastore mirror (optional)
	mirror, closeMirror, err := store.Open(cfg)
	if err != nil {
		slog.Error("datastore setup failed", "error", err)
		os.Exit(1)
	}
	defer closeMirror()

	if cfg.FirebaseKey == "" {
		slog.Info("no identity provider configured, SMS verification runs in demo mode")
	}

	deps := handlers.NewDeps(cfg, seed, mirror)
	mux := router.NewRouter(deps)

	// Drop ads that were opened and never closed
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go deps.Gate.Run(sweepCtx, adSweepInterval)

	// Create server
	server := &http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("Failed to listen", "error", err)
		return
	}

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "issues", len(seed))
	if err := serve(ctx, server, ln, deps.Mirror.Wait); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// serve runs server on ln until ctx is done, then shuts it down. drain
// runs only after every in-flight handler has returned, so an ad closed
// during shutdown has queued its mirror write before drain waits on it.
func serve(ctx context.Context, server *http.Server, ln net.Listener, drain func()) error {
	defer drain()

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		server.Close()
	}
	<-errc
	return err
}
