// internal/server/server.go
// Package server serves the rendered leaderboard under its path prefix.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/mwiater/llmboard/internal/site"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Config holds what the server needs to render and expose the site.
type Config struct {
	Addr    string
	Dataset dataset.Dataset
	Site    site.Options
}

// NewRouter renders the page once and returns a handler serving it at
// <prefix>/ along with <prefix>/data.json and /healthz.
func NewRouter(cfg Config) (http.Handler, error) {
	page, err := site.Render(cfg.Dataset, cfg.Site)
	if err != nil {
		return nil, err
	}
	data, err := site.RenderData(cfg.Dataset, cfg.Site.Updated)
	if err != nil {
		return nil, err
	}
	prefix := cfg.Site.Prefix

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	if prefix != "" {
		r.Get("/", redirectTo(prefix+"/"))
		r.Get(prefix, redirectTo(prefix+"/"))
	}
	index := serveBytes("text/html; charset=utf-8", page)
	r.Get(prefix+"/", index)
	r.Get(prefix+"/"+site.IndexFile, index)
	r.Get(prefix+"/"+site.DataFile, serveBytes("application/json", data))

	return r, nil
}

func serveBytes(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(body)
	}
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}

// requestLogger routes chi's access log through the zap logger.
func requestLogger() func(http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(logging.L().Named("http")),
		NoColor: true,
	})
}

// Run listens on cfg.Addr and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	handler, err := NewRouter(cfg)
	if err != nil {
		_ = ln.Close()
		return err
	}
	return Serve(ctx, ln, handler)
}

// Serve serves handler on ln until ctx is cancelled, then shuts down
// gracefully. It takes ownership of ln.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logging.L().Info("serving leaderboard", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.L().Info("server stopped")
	return nil
}
