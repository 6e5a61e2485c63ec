// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router.
//
// Chi answers 405 when the path of a request matches a route but the method
// does not. This handler answers 404 instead, so callers using a wrong
// method cannot tell which paths exist. Parameterised routes are matched
// the way chi matches them.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		// the method is registered after all
		router.ServeHTTP(w, r)
	}
}
