package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/berkgungor/quantix/internal/application"
	appanalysis "github.com/berkgungor/quantix/internal/application/analysis"
	domain "github.com/berkgungor/quantix/internal/domain/analysis"
	"github.com/berkgungor/quantix/internal/middleware"
)

// maxBodyBytes caps the analyze request body.
const maxBodyBytes = 1 << 20

// allMethods is the CORS method list; go-chi/cors has no method wildcard.
var allMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// Options configures NewRouter.
type Options struct {
	Version       string
	AllowedOrigin string
	Logger        *zap.Logger
	Metrics       *middleware.Metrics
}

// storeCounter is implemented by repositories that can report their size.
type storeCounter interface {
	Count(ctx context.Context) (int, error)
}

type Router struct {
	svc     *appanalysis.Service
	metrics *middleware.Metrics
	logger  *zap.Logger
}

func NewRouter(svc *appanalysis.Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics()
	}
	r := &Router{svc: svc, metrics: opts.Metrics, logger: opts.Logger}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.AllowedOrigin},
		AllowedMethods:   allMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	mux.Use(middleware.Logging(opts.Logger))
	mux.Use(opts.Metrics.Middleware)

	var clock application.Clock = application.SystemClock{}
	if svc.Clock != nil {
		clock = svc.Clock
	}
	if c, ok := svc.Repo.(storeCounter); ok {
		err := opts.Metrics.RegisterStored(func() float64 {
			n, _ := c.Count(context.Background())
			return float64(n)
		})
		if err != nil {
			opts.Logger.Warn("stored analyses gauge not registered", zap.Error(err))
		}
	}
	mux.Get("/health", middleware.HealthHandler(opts.Version, clock.Now))
	mux.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	mux.Post("/analyze/{service_type}", r.wrap(r.handleSubmit))
	mux.Route("/analysis/{id}", func(rt chi.Router) {
		rt.Get("/", r.wrap(r.handleGet))
		rt.Get("/results", r.wrap(r.handleResults))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInvalidServiceType):
			writeDetail(w, http.StatusBadRequest, "Invalid service type")
		case errors.Is(err, domain.ErrInvalidRequest):
			writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Analysis not found")
		case errors.Is(err, domain.ErrProcessing):
			writeDetail(w, http.StatusAccepted, "Analysis still processing")
		default:
			r.logger.Error("request failed", zap.String("path", req.URL.Path), zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// POST /analyze/{service_type}
// Body: one AnalysisRequest JSON object with service_type set, unknown fields ignored.
func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) error {
	serviceType := chi.URLParam(req, "service_type")
	if _, err := domain.ParseServiceType(serviceType); err != nil {
		return err
	}

	var body domain.Request
	dec := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", domain.ErrInvalidRequest)
	}

	rec, err := r.svc.Submit(req.Context(), serviceType, body)
	if err != nil {
		return err
	}
	r.metrics.ObserveAnalysis(serviceType)
	return writeJSON(w, http.StatusOK, rec)
}

// GET /analysis/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.svc.Get(req.Context(), domain.ID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

// GET /analysis/{id}/results
func (r *Router) handleResults(w http.ResponseWriter, req *http.Request) error {
	res, err := r.svc.Results(req.Context(), domain.ID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	_ = writeJSON(w, status, map[string]string{"detail": detail})
}
