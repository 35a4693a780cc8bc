// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Pre-flight OPTIONS requests are answered with 204 and an Allow header
// listing the methods registered for the path. Any other unsupported method
// gets a 404, so callers cannot probe which routes exist.
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	// Routes are registered after this handler is built, so the index is
	// taken on first use.
	index := sync.OnceValue(func() chi.Routes { return flattenRoutes(router) })

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		allowed := allowedMethods(index(), r.URL.Path)
		if len(allowed) == 0 {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(append(allowed, http.MethodOptions), ", "))
		w.WriteHeader(http.StatusNoContent)
	}
}

// flattenRoutes copies every concrete route of router into a mux without
// subrouters. Mounting a subrouter leaves stub nodes that match any method at
// the mount point, which would make Match report every method there.
func flattenRoutes(router chi.Routes) chi.Routes {
	flat := chi.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		flat.Method(method, route, noop)
		// a subrouter's "/" also answers on the mount path itself
		if trimmed := strings.TrimSuffix(route, "/"); trimmed != "" && trimmed != route {
			flat.Method(method, trimmed, noop)
		}
		return nil
	})

	return flat
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, m := range routeMethods {
		if router.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}
