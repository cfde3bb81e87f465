package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/qsift/qsift/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	svc := service.New()
	if err := svc.Start(ctx); err != nil {
		log.Printf("failed to start service: %v\n", err)
	}
}
