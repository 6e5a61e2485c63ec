package http

import (
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Get("/health", h.getHealth)
	router.Handle("/metrics", metrics.Handler())
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/version", h.getServerVersion)
	})

	// sync channels live as long as the client stays connected, so no
	// request timeout and no compression wrapper
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/hubs/sync", h.hubs.ServeCursorHub)
		r.Get("/hubs/sync/v2", h.hubs.ServeDeviceHub)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/devices", h.listDevices)
		r.Post("/api/devices/{deviceID}", h.registerDevice)
		r.Delete("/api/devices/{deviceID}", h.unregisterDevice)

		r.Put("/api/sync/vault-key", h.setVaultKey)
		r.Delete("/api/sync/account", h.deleteSyncData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
