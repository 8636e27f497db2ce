package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"log/slog"

	httpadapter "svw.info/wordle/internal/adapters/http"
	"svw.info/wordle/internal/infrastructure/storage"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger := newLogger(cfg)
			svc, orch, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer orch.Close()
			svc.Storage = storage.NewFS(cfg.ReportDir)

			mux := http.NewServeMux()
			httpadapter.New(svc).Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", cfg.Addr, "reports", cfg.ReportDir, "workers", cfg.Workers)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
