// Package preview serves the built portfolio page for local development.
package preview

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Its-donkey/portfolio/internal/ui/markup"
	"github.com/Its-donkey/portfolio/logging"
)

// Config controls the preview server.
type Config struct {
	Listen          string
	Dir             string
	Check           bool
	ShutdownTimeout time.Duration
}

// Validate resolves Dir to an absolute path and checks it is a directory.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return errors.New("listen address is required")
	}
	root, err := filepath.Abs(c.Dir)
	if err != nil {
		return fmt.Errorf("resolve static directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("static directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static directory %s is not a directory", root)
	}
	c.Dir = root
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	return nil
}

// NewRouter returns the chi router serving root. The request logger wraps
// Recoverer so recovered panics are logged as 500s.
func NewRouter(root string, logger *logging.Logger) *chi.Mux {
	mime.AddExtensionType(".wasm", "application/wasm")

	r := chi.NewRouter()
	r.Use(logging.NewHTTPLogger(logger).Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/*", staticHandler(root))
	return r
}

func staticHandler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	index := filepath.Join(root, "index.html")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "" {
			http.ServeFile(w, r, index)
			return
		}
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		fileServer.ServeHTTP(w, r)
	})
}

// CheckIndex runs the markup contract check over root/index.html and logs
// what it finds. The returned error wraps markup.ErrContractViolation when a
// required element is missing.
func CheckIndex(root string, logger *logging.Logger) error {
	f, err := os.Open(filepath.Join(root, "index.html"))
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	report, err := markup.Check(f)
	if err != nil {
		return err
	}
	for _, req := range report.OptionalMissing() {
		logger.Debug("markup", "optional element absent", map[string]any{"selector": req.Selector})
	}
	for _, href := range report.DanglingLinks {
		logger.Warn("markup", "nav link has no matching section", map[string]any{"href": href})
	}
	for _, req := range report.Missing() {
		logger.Warn("markup", "required element missing", map[string]any{
			"selector":    req.Selector,
			"description": req.Description,
		})
	}
	return report.Err()
}

// Serve runs the preview server until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, logger *logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Check {
		if err := CheckIndex(cfg.Dir, logger); err != nil {
			logger.Warn("markup", "page does not satisfy the UI contract", map[string]any{"error": err.Error()})
		}
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(cfg.Dir, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http", "serving portfolio", map[string]any{"dir": cfg.Dir, "listen": cfg.Listen})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("http", "server stopped", nil)
	return nil
}
