package service

import "log/slog"

// Option is a functional option for the qsift service.
type Option func(*Options)

// Options contains options for the qsift service.
type Options struct {
	Port           int
	CacheSize      int
	LogLevel       slog.Level
	AllowedOrigins []string
}

// WithPort sets the port to listen on.
func WithPort(port int) Option {
	return func(opts *Options) {
		opts.Port = port
	}
}

// WithCacheSize sets the parse result cache size.
func WithCacheSize(size int) Option {
	return func(opts *Options) {
		opts.CacheSize = size
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level slog.Level) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithAllowedOrigins sets the origins allowed to make CORS requests.
func WithAllowedOrigins(origins []string) Option {
	return func(opts *Options) {
		opts.AllowedOrigins = origins
	}
}
