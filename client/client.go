package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/query"
)

/*
client is a thin HTTP client for the parse service.
*/

////////////////////////////////////////////////////////////////////////////////

// Client calls a remote qsift service.
type Client struct {
	serverURL string
	httpc     *http.Client
}

// New constructs a client for the service at serverURL.
func New(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		httpc:     http.DefaultClient,
	}
}

// Parse submits a query string to the remote parse endpoint. Parsing errors
// arrive inside the result, matching the local Parse contract; the returned
// error covers transport and protocol failures only.
func (c *Client) Parse(ctx context.Context, rawQuery string) (query.Result, error) {
	url := fmt.Sprintf("%s/v1/parse?%s", c.serverURL, rawQuery)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return query.Result{}, fmt.Errorf("error building request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return query.Result{}, fmt.Errorf("error calling parse: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return query.Result{}, fmt.Errorf("unexpected status code: %s", resp.Status)
		}
		return query.Result{}, fmt.Errorf("failed to parse: %s", body)
	}
	var result query.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return query.Result{}, fmt.Errorf("error decoding response: %w", err)
	}
	return result, nil
}
