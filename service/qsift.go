package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/qsift/qsift/routes"
	"github.com/qsift/qsift/util/log"
	"golang.org/x/sync/errgroup"
)

/*
service owns the HTTP server lifecycle: it builds the router, serves until
the context is canceled, and then shuts down gracefully.
*/

////////////////////////////////////////////////////////////////////////////////

const shutdownTimeout = 10 * time.Second

// Qsift is the parse service.
type Qsift struct {
	opts Options
}

// New constructs a service from the supplied options.
func New(options ...Option) *Qsift {
	opts := Options{
		Port:      8089,
		CacheSize: 1024,
	}
	for _, option := range options {
		option(&opts)
	}
	return &Qsift{opts: opts}
}

// Start runs the service until the context is canceled.
func (q *Qsift) Start(ctx context.Context) error {
	log.Configure(q.opts.LogLevel)
	r := routes.MakeRoutes(q.opts.CacheSize, q.opts.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", q.opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow(ctx, "starting server", "port", q.opts.Port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Infow(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("service terminated: %w", err)
	}
	return nil
}
