package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/qsift/qsift/service"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveCacheSize int
	serveLogLevel  string
	serveOrigins   []string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the parse service",
	Run: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		checkErr(level.UnmarshalText([]byte(serveLogLevel)))
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		svc := service.New(
			service.WithPort(servePort),
			service.WithCacheSize(serveCacheSize),
			service.WithLogLevel(level),
			service.WithAllowedOrigins(serveOrigins),
		)
		checkErr(svc.Start(ctx))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().IntVarP(&servePort, "port", "p", 8089, "Port to listen on")
	serveCmd.PersistentFlags().IntVarP(&serveCacheSize, "cache-size", "", 1024, "Parse result cache size")
	serveCmd.PersistentFlags().StringVarP(&serveLogLevel, "log-level", "", "info", "Log level (debug, info, warn, error)")
	serveCmd.PersistentFlags().StringSliceVarP(&serveOrigins, "allowed-origins", "", nil, "Origins allowed to make CORS requests")
}
