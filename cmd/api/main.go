package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"study-portal/cmd/api/app"
	"study-portal/cmd/api/server"
)

func main() {
	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		a.Logger.Fatal("application exited with error", zap.Error(err))
	}
}
