package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mkarpenko/telegram-shop-bot/internal/config"
	"github.com/mkarpenko/telegram-shop-bot/internal/logging"
)

// configcheck резолвит окружение ровно так же, как это сделает бот на старте,
// и завершается с ненулевым кодом при фатальной конфигурации.
// Запускается в деплой-пайплайне перед выкладкой.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, используем переменные окружения")
	}

	lg, err := logging.Init(os.Getenv("LOG_LEVEL"), os.Getenv("ENV"), "")
	if err != nil {
		log.Fatalf("логгер не собрался: %v", err)
	}
	defer lg.Closer()

	cfg, err := config.Load(lg.Base)
	if err != nil {
		lg.Base.Error("конфигурация не прошла валидацию", zap.Error(err))
		lg.Closer()
		os.Exit(1)
	}

	lg.Base.Info("конфигурация валидна", cfg.Fields()...)
}
