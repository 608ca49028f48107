package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"ask-gateway/internal/app"
	"ask-gateway/internal/httputil"
)

const shutdownGrace = 10 * time.Second

// askRequest keeps Question as a pointer so a missing field differs from an empty string.
type askRequest struct {
	Question *string `json:"question" validate:"required"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(deps.Config.Host, strconv.Itoa(deps.Config.Port)),
		Handler:           routes(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("server stopped")
}

func routes(deps app.Deps) chi.Router {
	r := httputil.NewRouter(deps.Log)
	r.Use(httputil.PermissiveCORS())

	r.Get("/", rootHandler())
	r.Post("/auth/register", askHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"message": "Hello from FastAPI"})
	}
}

// askHandler answers with 200 even when the provider fails; the body's status field carries
// the outcome.
func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		// The upstream call outlives a dropped client connection.
		ctx := context.WithoutCancel(r.Context())
		res := deps.Adapter.Ask(ctx, *req.Question)
		if !res.OK() {
			httputil.WriteJSON(w, http.StatusOK, map[string]any{
				"status":  "error",
				"message": res.Reason(),
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"answer": res.Answer(),
		})
	}
}
