// Package server exposes the scoring engine over HTTP for CRM integrations
// and the demo frontend.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/batch"
	"github.com/sells-group/leadscore-cli/internal/dedupe"
	"github.com/sells-group/leadscore-cli/internal/scorer"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

// Server wires the engine components behind a chi router.
type Server struct {
	scorer       *scorer.Scorer
	validator    *validate.Validator
	orchestrator *batch.Orchestrator
	matcher      *dedupe.Matcher
	threshold    float64
	router       chi.Router
}

// New builds a Server. A threshold of 0 falls back to the dedupe default.
func New(s *scorer.Scorer, v *validate.Validator, o *batch.Orchestrator, m *dedupe.Matcher, threshold float64) *Server {
	srv := &Server{
		scorer:       s,
		validator:    v,
		orchestrator: o,
		matcher:      m,
		threshold:    threshold,
	}
	srv.setupRouter()
	return srv
}

// Router returns the configured HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1/leads", func(r chi.Router) {
		r.Get("/sample", s.handleSample)
		r.Post("/score", s.handleScore)
		r.Post("/score-batch", s.handleScoreBatch)
		r.Post("/validate", s.handleValidate)
		r.Post("/dedupe", s.handleDedupe)
	})

	s.router = r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			zap.L().Info("server: http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
