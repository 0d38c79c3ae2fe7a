package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/research"
	"github.com/sells-group/compscope/internal/soc"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP research service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		mux := newMux(env)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newMux builds the HTTP routes over an initialized environment.
func newMux(env *pipelineEnv) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /v1/research", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title    string `json:"title"`
			Location string `json:"location"`
			SOC      string `json:"soc"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}

		socOverride := ""
		if req.SOC != "" {
			socOverride = soc.Clean(req.SOC)
			if socOverride == "" {
				writeError(w, http.StatusBadRequest, "soc is not a valid SOC code")
				return
			}
		}

		res, err := env.Pipeline.Run(r.Context(), req.Title, req.Location, socOverride)
		if err != nil {
			if eris.Is(err, research.ErrNoOccupationMatch) {
				writeError(w, http.StatusUnprocessableEntity, "no occupation match for title")
				return
			}
			zap.L().Error("research run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "research run failed")
			return
		}

		writeJSON(w, http.StatusOK, res)
	})

	mux.HandleFunc("GET /v1/resolve", func(w http.ResponseWriter, r *http.Request) {
		location := r.URL.Query().Get("location")
		if location == "" {
			writeError(w, http.StatusBadRequest, "location query parameter is required")
			return
		}
		writeJSON(w, http.StatusOK, env.Resolver.Resolve(r.Context(), location))
	})

	mux.HandleFunc("GET /v1/match", func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("title")
		if title == "" {
			writeError(w, http.StatusBadRequest, "title query parameter is required")
			return
		}
		matches := env.Matcher.Match(r.Context(), title)
		writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
