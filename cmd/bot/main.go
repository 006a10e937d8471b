package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mkarpenko/telegram-shop-bot/internal/app"
	"github.com/mkarpenko/telegram-shop-bot/internal/config"
	"github.com/mkarpenko/telegram-shop-bot/internal/logging"
	"github.com/mkarpenko/telegram-shop-bot/internal/metrics"
	"github.com/mkarpenko/telegram-shop-bot/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, используем переменные окружения")
	}

	lg, err := logging.Init(os.Getenv("LOG_LEVEL"), os.Getenv("ENV"), os.Getenv("LOG_PATH"))
	if err != nil {
		log.Fatalf("логгер не собрался: %v", err)
	}
	defer lg.Closer()

	cfg, err := config.Load(lg.Base)
	if err != nil {
		lg.Base.Fatal("конфигурация не прошла валидацию", zap.Error(err))
	}

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env)
	if err != nil {
		lg.Base.Warn("Sentry не инициализирован", zap.Error(err))
	}
	defer flush()

	if err := cfg.EnsureDirs(); err != nil {
		observability.CaptureErr(err)
		lg.Base.Error("не удалось создать каталог медиа", zap.String("dir", cfg.MediaDir), zap.Error(err))
	}

	metrics.SetConfig(len(cfg.PrimaryAdminIDs), len(cfg.SecondaryAdminIDs), cfg.BasketTimeout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app.StartHTTP(ctx, cfg.HTTPAddr, cfg.MediaDir)

	lg.Base.Info("конфигурация загружена, сервис готов", cfg.Fields()...)

	// Рантайм бота и клиент NOWPayments живут снаружи и потребляют эту конфигурацию.
	<-ctx.Done()
	lg.Base.Info("остановка по сигналу")
}
