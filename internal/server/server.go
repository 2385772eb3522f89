// Package server exposes the loan comparison engine as an HTTP JSON API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avjensen/realkredit-compare/internal/compare"
	"github.com/avjensen/realkredit-compare/internal/metrics"
	"github.com/avjensen/realkredit-compare/internal/queryenc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	comparator  *compare.Comparator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the comparison API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		comparator:  compare.NewComparator(logger),
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Comparison API endpoint; POST takes a JSON body, GET takes the
	// shareable-link query parameters.
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type compareResponse struct {
	*compare.TotalCalculation
	Duration string `json:"duration"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var info compare.AllLoanInfo
	switch r.Method {
	case http.MethodPost:
		if h.maxBodySize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		}
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			metrics.Comparisons.WithLabelValues("bad_request").Inc()
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode loan input: %v", err))
			return
		}
	case http.MethodGet:
		decoded, err := queryenc.Decode(r.URL.Query())
		if err != nil {
			metrics.Comparisons.WithLabelValues("bad_request").Inc()
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode loan input: %v", err))
			return
		}
		info = decoded
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	result, err := h.comparator.Compare(info)
	if err != nil {
		// The engine only errors on unknown enum keys, which is bad input
		// at this boundary.
		metrics.Comparisons.WithLabelValues("bad_request").Inc()
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.Comparisons.WithLabelValues("ok").Inc()
	metrics.RequestDuration.WithLabelValues("/api/compare").Observe(time.Since(start).Seconds())

	h.writeJSON(w, http.StatusOK, compareResponse{
		TotalCalculation: result,
		Duration:         time.Since(start).String(),
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

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.logger.Debug("request failed",
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
		zap.String("message", message),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}
