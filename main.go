package main

import (
	"log"
	"os"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"quoting-engine/internal/config"
	"quoting-engine/internal/document"
	"quoting-engine/internal/handler"
	"quoting-engine/internal/payment"
	"quoting-engine/internal/session"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer logger.Sync()

	sessions := session.NewManager(logger, cfg.SessionIdleTTL.Std())
	sessions.StartJanitor(time.Minute)
	defer sessions.Stop()

	payments := payment.NewClient(cfg.StripeSecretKey, cfg.BaseURL, cfg.Currency)
	srv := handler.New(cfg, sessions, document.NewComposer(), payments, logger)

	logger.Info("Quoting engine starting", zap.String("port", cfg.Port))
	if err := fasthttp.ListenAndServe(":"+cfg.Port, srv.Handle); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
