// Package server exposes the project selection engine over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gigtools/gig-optimizer/internal/config"
	"github.com/gigtools/gig-optimizer/internal/optimizer"
	"github.com/gigtools/gig-optimizer/pkg/constants"
	"github.com/gigtools/gig-optimizer/pkg/output"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the selection API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Selection API endpoint
	mux.HandleFunc("/api/optimize", h.handleOptimize)

	// Built-in demonstration catalog
	mux.HandleFunc("/api/sample", h.handleSample)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type optimizeRequest struct {
	Projects    []config.Project   `json:"projects"`
	Constraints config.Constraints `json:"constraints"`
}

type optimizeResponse struct {
	Result   *optimizer.Result `json:"result"`
	CSV      string            `json:"csv"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var request optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleOptimize")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleOptimize")
		return
	}

	if len(request.Projects) == 0 {
		h.respondError(w, http.StatusBadRequest, "no projects supplied", "server.handleOptimize")
		return
	}

	conf := &config.Configuration{
		Projects:    request.Projects,
		Constraints: request.Constraints,
	}
	conf.AssignProjectIDs()

	if err := conf.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleOptimize")
		return
	}
	warnings := conf.ValidateConfiguration()

	result, err := optimizer.Optimize(h.logger, conf.Projects, conf.Constraints)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("optimization failed: %v", err), "server.handleOptimize")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("selection computed",
		zap.String("op", "server.handleOptimize"),
		zap.Int("projectsSelected", result.ProjectsSelected),
		zap.Int("projectsAvailable", result.ProjectsAvailable),
		zap.Float64("totalPay", result.TotalPay),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, optimizeResponse{
		Result:   result,
		CSV:      output.CsvString(result),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleSample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	sample := config.SampleConfiguration()
	h.writeJSON(w, http.StatusOK, optimizeRequest{
		Projects:    sample.Projects,
		Constraints: sample.Constraints,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("selection request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
