package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"TinyCalc/internal/calc"
)

// RequestIDHeader carries the per-request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Handler holds HTTP handlers for the TinyCalc API.
type Handler struct {
	calc         *calc.Calculator
	logger       *slog.Logger
	version      string
	maxBodyBytes int64
}

// Options configures a Handler.
type Options struct {
	Version      string
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewHandler creates a Handler backed by the given Calculator.
func NewHandler(c *calc.Calculator, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 10
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		calc:         c,
		logger:       opts.Logger,
		version:      opts.Version,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /eval", h.handleEval)

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /ready", h.handleReady)
	mux.HandleFunc("GET /", h.handleRoot)
}

// Routes returns the API wrapped in request ID and access logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h.withRequestLog(mux)
}

// --- Evaluation ---

type evalRequest struct {
	Expression string `json:"expression"`
}

type evalResponse struct {
	Expression string   `json:"expression"`
	Tokens     []string `json:"tokens"`
	Tree       string   `json:"tree"`

	// Result is the value in native text form so that ±Inf and NaN
	// survive JSON encoding.
	Result string `json:"result"`
}

func (h *Handler) handleEval(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return
	}
	if req.Expression == "" {
		writeError(w, http.StatusBadRequest, "expression is required", "")
		return
	}

	res, err := h.calc.Evaluate(req.Expression)
	if err != nil {
		var ce *calc.Error
		if errors.As(err, &ce) {
			writeError(w, http.StatusUnprocessableEntity, ce.Error(), string(ce.Stage))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	tokens := make([]string, len(res.Tokens))
	for i, t := range res.Tokens {
		tokens[i] = t.Value
	}

	writeJSON(w, http.StatusOK, evalResponse{
		Expression: res.Input,
		Tokens:     tokens,
		Tree:       res.Tree.String(),
		Result:     res.FormatValue(),
	})
}

// --- Probes ---

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "TinyCalc",
		"version": h.version,
	})
}

// --- Middleware ---

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (h *Handler) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, stage string) {
	body := map[string]string{"message": message}
	if stage != "" {
		body["stage"] = stage
	}
	writeJSON(w, status, map[string]interface{}{
		"error": body,
	})
}
