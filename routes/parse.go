package routes

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/query"
	"github.com/qsift/qsift/util"
	"github.com/qsift/qsift/util/httputil"
	"github.com/qsift/qsift/util/log"
	"github.com/spaolacci/murmur3"
)

/*
The parse route compiles the request's query string into a predicate tree.
Compilation is deterministic for a given query string, so results are cached
in an LRU keyed by a hash of the raw query. Requests whose query string fails
to compile get a 400 with the same result body, errors populated and results
null.
*/

////////////////////////////////////////////////////////////////////////////////

// newParseHandler creates a new parse handler with a result cache of the
// given size.
func newParseHandler(cacheSize int) http.HandlerFunc {
	cache := util.NewLRU[uint64, query.Result](cacheSize)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		raw := r.URL.RawQuery
		key := murmur3.Sum64([]byte(raw))
		result, cached := cache.Get(key)
		if !cached {
			result = query.Parse(raw)
			cache.Put(key, result)
		}
		log.Debugw(ctx, "parse request",
			"querystring", raw,
			"cached", cached,
			"errors", len(result.Filter.Errors),
		)
		data, err := json.Marshal(result)
		if err != nil {
			httputil.InternalServerError(ctx, w, "error encoding result: %s", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(util.When(len(result.Filter.Errors) > 0, http.StatusBadRequest, http.StatusOK))
		if _, err := w.Write(data); err != nil {
			log.Errorw(ctx, "error writing response", "error", err)
		}
	}
}
