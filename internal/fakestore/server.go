// Package fakestore is a local stand-in for the public demo store API. It
// serves the login and user endpoints the storefront client consumes,
// with the same wire format and quirks.
package fakestore

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/fakestore/auth"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds the handlers of the stand-in API.
type Server struct {
	users         *Catalog
	secret        []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

func NewServer(users *Catalog, secretKey string, tokenValidity time.Duration, l logging.Logger) *Server {
	return &Server{
		users:         users,
		secret:        []byte(secretKey),
		tokenValidity: tokenValidity,
		logger:        l.With("module", "fakestore"),
	}
}

// Routes wires every endpoint and middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Head("/", s.handleIndex)
	r.Post("/auth/login", s.handleLogin)
	r.Get("/users", s.handleListUsers)
	r.Get("/users/{id}", s.handleGetUser)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("fakestore\n"))
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "username and password are not provided in JSON format", http.StatusBadRequest)
		return
	}

	user, err := s.users.Authenticate(req.Username, req.Password)
	if err != nil {
		s.logger.Info(r.Context(), "login rejected", "username", req.Username)
		http.Error(w, "username or password is incorrect", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.secret, s.tokenValidity)
	if err != nil {
		s.logger.Error(r.Context(), "sign token", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, loginResponse{Token: token})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.users.Users())
}

// handleGetUser answers unknown ids with 200 and a null body, as the demo
// upstream does.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "user id should be provided", http.StatusBadRequest)
		return
	}

	if token, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeaderName), common.BearerPrefix); ok {
		if _, _, err := auth.ParseToken(token, s.secret); err != nil {
			s.logger.Debug(r.Context(), "ignoring bad bearer token", "error", err)
		}
	}

	user, err := s.users.User(id)
	if err != nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request with its id, status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
