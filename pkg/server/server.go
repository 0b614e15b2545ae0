// Package server wires the item store, API handlers and middleware into one router.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/api"
	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/logging"
	"github.com/adfharrison1/go-items/pkg/storage"
)

// Server holds references to storage, router, etc.
type Server struct {
	router   *mux.Router
	dbEngine *storage.StorageEngine
	logger   *zap.Logger
}

// Options configures a Server
type Options struct {
	Logger      *zap.Logger
	ViewDefault domain.ViewConfig
	MaxPageSize int
	Storage     []storage.StorageOption
}

// NewServer creates a new instance of Server.
func NewServer(opts Options) *Server {
	logger := logging.OrNop(opts.Logger)

	storageOptions := append([]storage.StorageOption{storage.WithLogger(logger.Named("storage"))}, opts.Storage...)
	s := &Server{
		router:   mux.NewRouter(),
		dbEngine: storage.NewStorageEngine(storageOptions...),
		logger:   logger,
	}

	var handlerOptions []api.HandlerOption
	if opts.MaxPageSize > 0 {
		handlerOptions = append(handlerOptions, api.WithViewDefaults(opts.ViewDefault, opts.MaxPageSize))
	}
	api.NewHandler(s.dbEngine, logger.Named("api"), handlerOptions...).RegisterRoutes(s.router)

	// mux runs Use middleware only on matched routes; the fallback handlers are wrapped by hand
	withMiddleware := func(h http.Handler) http.Handler {
		return api.RequestIDMiddleware(api.RequestLoggerMiddleware(logger.Named("http"))(h))
	}
	s.router.Use(api.RequestIDMiddleware)
	s.router.Use(api.RequestLoggerMiddleware(logger.Named("http")))

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("No route found", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		api.WriteJSONError(w, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
	}))
	s.router.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSONError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	}))

	return s
}

// InitDB loads items from filename; a missing file starts an empty store.
func (s *Server) InitDB(filename string) error {
	if err := s.dbEngine.LoadFromFile(filename); err != nil {
		s.logger.Error("Could not load items", zap.String("file", filename), zap.Error(err))
		return err
	}
	s.logger.Info("Loaded items", zap.String("file", filename), zap.Int("count", s.dbEngine.Count()))
	return nil
}

// SaveDB saves the current items to file
func (s *Server) SaveDB(filename string) error {
	if err := s.dbEngine.SaveToFile(filename); err != nil {
		s.logger.Error("Could not save items", zap.String("file", filename), zap.Error(err))
		return err
	}
	s.logger.Info("Saved items", zap.String("file", filename))
	return nil
}

// Store exposes the underlying item store.
func (s *Server) Store() *storage.StorageEngine {
	return s.dbEngine
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}

// StartBackgroundWorkers starts the store's periodic saver, if configured
func (s *Server) StartBackgroundWorkers() {
	s.dbEngine.StartBackgroundWorkers()
}

// StopBackgroundWorkers stops the store's background workers
func (s *Server) StopBackgroundWorkers() {
	s.dbEngine.StopBackgroundWorkers()
}
