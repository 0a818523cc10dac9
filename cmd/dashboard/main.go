package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Zahkklm/FinRiskDetector/internal/backend"
	"github.com/Zahkklm/FinRiskDetector/internal/config"
	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/market"
	"github.com/Zahkklm/FinRiskDetector/internal/realtime"
	"github.com/Zahkklm/FinRiskDetector/internal/scheduler"
	"github.com/Zahkklm/FinRiskDetector/internal/server"
	"github.com/joho/godotenv"
)

const (
	_dashboardCfgFilePath = "./configs/dashboard.yaml"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("can't detect .env file")
	}

	cfg, err := config.LoadDashboardConfig(_dashboardCfgFilePath)
	if err != nil {
		log.Fatalf("%s: can't load dashboard cfg", err)
	}

	zapLogger, loggerSync, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := backend.NewClient(cfg.Backend, zapLogger)
	defer func() {
		if err := client.Close(); err != nil {
			zapLogger.Warnf("%s: can't close backend client", err)
		}
	}()

	store := market.NewStore()
	hub := realtime.NewHub(zapLogger)

	sched := scheduler.NewScheduler(cfg.Refresh.Interval, client, store, hub, zapLogger)
	go sched.Run(ctx)

	srv := server.NewServer(ctx, cfg.Server.Port, client, store, hub, cfg.UserID, zapLogger)

	zapLogger.Infof("dashboard listening on :%s, refreshing every %s", cfg.Server.Port, cfg.Refresh.Interval)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Errorf("%s: server stopped", err)
	}
}
