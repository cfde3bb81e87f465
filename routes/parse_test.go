package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/routes"
	"github.com/qsift/qsift/util/httputil"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	srv := httptest.NewServer(routes.MakeRoutes(64, nil))
	defer srv.Close()

	t.Run("valid filter compiles", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/parse?filter[age][greater-than]=10")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body struct {
			Filter struct {
				Results map[string]any `json:"results"`
				Errors  []any          `json:"errors"`
			} `json:"filter"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Empty(t, body.Filter.Errors)
		require.Equal(t, map[string]any{
			"greater-than": []any{"#age", float64(10)},
		}, body.Filter.Results)
	})

	t.Run("invalid filter is a bad request with errors", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/parse?filter[age]=10,abc")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Filter struct {
				Results any `json:"results"`
				Errors  []struct {
					Message  string `json:"message"`
					ParamKey string `json:"paramKey"`
				} `json:"errors"`
			} `json:"filter"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Nil(t, body.Filter.Results)
		require.Len(t, body.Filter.Errors, 1)
		require.Equal(t, "arrays should not mix multiple value types", body.Filter.Errors[0].Message)
		require.Equal(t, "filter[age]", body.Filter.Errors[0].ParamKey)
	})

	t.Run("repeated queries are served from cache", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := http.Get(srv.URL + "/v1/parse?filter[name]=bob")
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}
	})

	t.Run("non-finite numerals compile and serialize", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/parse?filter[age]=NaN")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Filter struct {
				Results map[string]any `json:"results"`
			} `json:"filter"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, map[string]any{
			"substring-match": []any{"#age", "%NaN%"},
		}, body.Filter.Results)
	})

	t.Run("unknown routes get json error bodies", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body httputil.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "no route for /v1/nope", body.Error)
	})

	t.Run("disallowed methods get json error bodies", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/parse", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body httputil.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "method POST not allowed", body.Error)
	})

	t.Run("healthz responds", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
