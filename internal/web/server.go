// SPDX-License-Identifier: Apache-2.0

// Package web exposes the scanner over HTTP for filing-gate integrations.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"frcp-scan/internal/core"
	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"
	"frcp-scan/internal/restricted"
	"frcp-scan/internal/suppressions"
	"frcp-scan/internal/version"
)

// maxScanBytes bounds request bodies; court filings over this size
// should go through the CLI
const maxScanBytes = 10 << 20

// Server serves the scan API
type Server struct {
	port         string
	suppressions *suppressions.Manager
	httpServer   *http.Server
}

// NewServer creates a web server on the given port. The suppression
// manager may be nil, in which case no findings are suppressed.
func NewServer(port string, sm *suppressions.Manager) *Server {
	return &Server{
		port:         port,
		suppressions: sm,
	}
}

// ScanRequest is the JSON body for POST /api/scan
type ScanRequest struct {
	Text    string   `json:"text"`
	DocType string   `json:"doc_type"`
	Checks  []string `json:"checks,omitempty"`
}

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// Router builds the HTTP routing table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/health", s.handleHealth)
	r.Post("/api/scan", s.handleScan)
	r.Get("/api/restricted-types", s.handleRestrictedTypes)
	r.Get("/api/checks", s.handleChecks)

	return r
}

// Start runs the server until it fails or is stopped
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	fmt.Printf("frcp-scan server listening on http://localhost:%s\n", s.port)
	return s.httpServer.ListenAndServe()
}

// requestID tags every response with a unique X-Request-ID, preserving
// an ID supplied by the caller
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.Short(),
	})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxScanBytes)

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result := core.RunScan(core.ScanConfig{
		DocumentText:       req.Text,
		DocumentTypeLabel:  req.DocType,
		Checks:             req.Checks,
		SuppressionManager: s.suppressions,
	})

	respondJSON(w, http.StatusOK, formatters.Response{
		ScanReport: result.Report,
		Suppressed: result.Suppressed,
	})
}

func (s *Server) handleRestrictedTypes(w http.ResponseWriter, _ *http.Request) {
	type restrictedType struct {
		Category string `json:"category"`
		Reason   string `json:"reason"`
	}

	var types []restrictedType
	for _, c := range restricted.Categories() {
		types = append(types, restrictedType{
			Category: string(c),
			Reason:   c.Reason(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"restricted_types": types,
	})
}

func (s *Server) handleChecks(w http.ResponseWriter, _ *http.Request) {
	var checks []string
	for _, c := range detector.AllCategories() {
		checks = append(checks, string(c))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"checks": checks,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; nothing useful left to do
		return
	}
}
