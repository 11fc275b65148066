// Package server exposes the transaction snapshot over HTTP. It carries
// three routes: a login endpoint that trades credentials for a bearer
// token and two token-guarded snapshot endpoints (JSON and CSV export).
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"looper/finance-dashboard/internal/auth"
	"looper/finance-dashboard/internal/export"
	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/models"
)

// SnapshotFunc supplies the transactions served by the API.
type SnapshotFunc func() []models.Transaction

// Server wires the auth service and the snapshot source into an http.Handler.
type Server struct {
	auth     *auth.Service
	snapshot SnapshotFunc
	logger   logging.Logger
	mux      *http.ServeMux
}

// New creates a Server over the given auth service and snapshot source.
func New(authService *auth.Service, snapshot SnapshotFunc, logger logging.Logger) *Server {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	s := &Server{
		auth:     authService,
		snapshot: snapshot,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/transactions", s.requireToken(s.handleTransactions))
	s.mux.HandleFunc("GET /api/transactions/export", s.requireToken(s.handleExport))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.WithField(logging.FieldAddr, addr).Info("Starting HTTP server")
	if err := http.ListenAndServe(addr, s); err != nil {
		return fmt.Errorf("error running HTTP server: %w", err)
	}
	return nil
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	token, err := s.auth.Authenticate(req.UserID, req.Password)
	if err != nil {
		if auth.IsAuthError(err) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		s.logger.WithError(err).Error("Login failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// requireToken rejects requests without a valid bearer token.
func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Missing token"})
			return
		}

		userID, err := s.auth.Verify(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
			return
		}

		s.logger.WithField(logging.FieldUser, userID).Debug("Authorized request")
		next(w, r)
	}
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.snapshot()
	if txs == nil {
		txs = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", export.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.FileName))

	if err := export.Minimal(w, s.snapshot()); err != nil {
		s.logger.WithError(err).Error("CSV export failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
