package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/cratedocs"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DefaultHost is the interface the server binds to. It is not configurable.
const DefaultHost = "127.0.0.1"

// DefaultPort is used when no port is configured.
const DefaultPort = "6666"

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is closed forcibly.
const ShutdownTimeout = 5 * time.Second

// maxBodySize limits the size of a decoded command.
const maxBodySize = 1 << 20

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

// Server exposes the relay over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *mux.Router

	// Port to bind on DefaultHost. "0" picks a free port.
	Port string

	Logger *slog.Logger

	CommandService cratedocs.CommandService
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: mux.NewRouter(),
		Port:   DefaultPort,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	s.router.Use(s.requestID)
	s.router.Use(s.accessLog)

	s.router.HandleFunc("/mcp", s.handleMCP).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.server.Handler = s.router
	return s
}

// Listen binds the listener without serving.
func (s *Server) Listen() (err error) {
	s.ln, err = net.Listen("tcp", net.JoinHostPort(DefaultHost, s.Port))
	return err
}

// Serve accepts connections on the bound listener until Close is called.
// It returns nil after a graceful close.
func (s *Server) Serve() error {
	s.Logger.Info("listening", "url", s.URL())
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Open binds the listener and starts serving in the background.
func (s *Server) Open() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go func() {
		if err := s.Serve(); err != nil {
			s.Logger.Error("serve", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return "http://" + net.JoinHostPort(DefaultHost, s.Port)
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP routes a request without a listener. Useful in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	var cmd cratedocs.Command
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&cmd); err != nil {
		s.Error(w, r, cratedocs.Errorf(cratedocs.EINVALID, "Invalid request body: %v", err))
		return
	}

	resp, err := s.CommandService.Execute(r.Context(), &cmd)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// Error writes err to the caller as an error envelope, with the status
// derived from its application error code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code := cratedocs.ErrorCode(err)
	if code == cratedocs.EINTERNAL {
		s.Logger.Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	s.writeJSON(w, r, ErrorStatusCode(code), cratedocs.NewErrorResponse(cratedocs.ErrorMessage(err)))
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "path", r.URL.Path, "err", err)
	}
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	cratedocs.EINVALID:     http.StatusBadRequest,
	cratedocs.EUPSTREAM:    http.StatusInternalServerError,
	cratedocs.EUNAVAILABLE: http.StatusInternalServerError,
	cratedocs.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// requestID tags each request with an id, reusing one supplied by the caller.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.Logger.Info("request",
				"id", r.Header.Get(RequestIDHeader),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(rec, r)
	})
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
