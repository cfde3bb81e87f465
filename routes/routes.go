package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/qsift/qsift/util/httputil"
	"github.com/qsift/qsift/util/mw"
)

/*
routes wires the HTTP surface. There is one interesting route: /v1/parse
compiles the request's query string into a predicate tree and returns it with
any parsing errors.
*/

////////////////////////////////////////////////////////////////////////////////

// MakeRoutes constructs the router. cacheSize bounds the parse result cache.
func MakeRoutes(cacheSize int, allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw.WithRequestID)
	r.Use(mw.WithRequestLogging)
	if len(allowedOrigins) > 0 {
		r.Use(mw.WithCORSAllowedOrigins(allowedOrigins))
	}
	r.HandleFunc("/v1/parse", newParseHandler(cacheSize)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", newHealthzHandler()).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httputil.NotFound(req.Context(), w, "no route for %s", req.URL.Path)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httputil.BadRequest(req.Context(), w, "method %s not allowed", req.Method)
	})
	return r
}

func newHealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
