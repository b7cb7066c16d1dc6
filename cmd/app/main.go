// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flower-subscription-payments/internal/config"
	"flower-subscription-payments/internal/infra/logging"
	"flower-subscription-payments/internal/infra/metrics"
	paymentgw "flower-subscription-payments/internal/infra/payment"
	"flower-subscription-payments/internal/infra/telegram"
	"flower-subscription-payments/internal/infra/web"
	"flower-subscription-payments/internal/usecase"
)

func main() {
	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.Register()

	// ---- Gateway ----
	gateway := paymentgw.NewYooKassaGateway(cfg.YooKassa.ShopID, cfg.YooKassa.SecretKey, cfg.YooKassa.APIURL)

	// ---- Notifier (real when configured, noop otherwise) ----
	var notifier usecase.Notifier
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		notifier, err = telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
		if err != nil {
			log.Fatalf("telegram notifier: %v", err)
		}
		logger.Info().Int64("chat_id", cfg.Telegram.ChatID).Msg("telegram notifier enabled")
	} else {
		notifier = telegram.NewNoopNotifier(logger)
		logger.Warn().Msg("telegram not configured, notifications disabled")
	}

	// ---- Use cases ----
	paymentUC := usecase.NewPaymentUseCase(gateway, cfg.YooKassa.ReturnURL, logger)
	notifUC := usecase.NewNotificationUseCase(notifier, logger)

	// ---- HTTP server ----
	mux := http.NewServeMux()
	web.NewServer(paymentUC, notifUC, logger).Register(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// ---- Graceful shutdown ----
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
