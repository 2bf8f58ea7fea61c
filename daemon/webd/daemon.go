// Package webd serves the plus code codec over HTTP.
package webd

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rotblauer/pluscodes/params"
)

type WebDaemon struct {
	Config *params.WebDaemonConfig
	logger *slog.Logger
}

func NewWebDaemon(config *params.WebDaemonConfig) *WebDaemon {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	return &WebDaemon{
		Config: config,
		logger: slog.With("d", "web"),
	}
}

// Run starts the HTTP server (ListenAndServe) and waits for it,
// returning any server error.
func (s *WebDaemon) Run() error {
	router := s.NewRouter()
	log.Printf("Starting web daemon on %s", s.Config.Address)
	return http.ListenAndServe(s.Config.Address, router)
}

func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	apiRoutes := router.NewRoute().Subrouter()

	// All API routes use permissive CORS settings.
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong)

	apiJSONRoutes := apiRoutes.NewRoute().Subrouter()
	apiJSONRoutes.Use(contentTypeMiddlewareFunc("application/json"))

	apiJSONRoutes.Path("/encode").HandlerFunc(s.handleEncode).Methods(http.MethodGet)
	apiJSONRoutes.Path("/encode").HandlerFunc(s.handleEncodeJSON).Methods(http.MethodPost)
	apiJSONRoutes.Path("/codes/{code}").HandlerFunc(s.handleDecode).Methods(http.MethodGet)
	apiJSONRoutes.Path("/codes/{code}/geojson").HandlerFunc(s.handleGeoJSON).Methods(http.MethodGet)
	apiJSONRoutes.Path("/codes/{code}/cover").HandlerFunc(s.handleCover).Methods(http.MethodGet)
	apiJSONRoutes.Path("/shorten").HandlerFunc(s.handleShorten).Methods(http.MethodGet)
	apiJSONRoutes.Path("/recover").HandlerFunc(s.handleRecover).Methods(http.MethodGet)

	return router
}
