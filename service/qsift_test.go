package service_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/qsift/qsift/client"
	"github.com/qsift/qsift/service"
	"github.com/qsift/qsift/util/testutils"
	"github.com/stretchr/testify/require"
)

func TestServiceLifecycle(t *testing.T) {
	port, err := testutils.GetOpenPort()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := service.New(service.WithPort(port), service.WithCacheSize(16))
	done := make(chan error, 1)
	go func() {
		done <- svc.Start(ctx)
	}()

	baseURL := fmt.Sprintf("http://localhost:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	c := client.New(baseURL)
	result, err := c.Parse(ctx, "filter[age][greater-than]=10")
	require.NoError(t, err)
	require.Empty(t, result.Filter.Errors)
	require.Equal(t, "[greater-than #age 10]", result.Filter.Results.String())

	result, err = c.Parse(ctx, "filter[age]=10,abc")
	require.NoError(t, err)
	require.Nil(t, result.Filter.Results)
	require.Len(t, result.Filter.Errors, 1)
	require.Equal(t, "arrays should not mix multiple value types", result.Filter.Errors[0].Message)

	cancel()
	require.NoError(t, <-done)
}
