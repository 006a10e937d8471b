package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config — иммутабельная конфигурация процесса. Резолвится один раз на старте,
// дальше только чтение; механизма перезагрузки нет.
type Config struct {
	BotToken string
	BotID    string // числовая часть токена, безопасна для логов

	NowPaymentsAPIKey    string
	NowPaymentsIPNSecret string
	WebhookURL           string
	SupportUsername      string

	PrimaryAdminIDs   []int64
	SecondaryAdminIDs []int64
	LegacyAdminID     *int64

	BasketTimeout time.Duration

	// Пути на персистентном диске (Render mount).
	DataDir      string
	DatabasePath string
	MediaDir     string
	BotMediaPath string

	HTTPAddr  string
	LogLevel  string
	Env       string // dev|prod
	SentryDSN string

	primarySet   map[int64]struct{}
	secondarySet map[int64]struct{}
}

const (
	defaultBasketTimeout = 15 * time.Minute
	defaultDataDir       = "/mnt/data"
)

// Load резолвит окружение в Config. Фатальные проблемы (токен, ключ платёжки)
// возвращаются ошибкой; восстановимые логируются и заменяются безопасным
// дефолтом, чтобы процесс мог стартовать.
func Load(log *zap.Logger) (*Config, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cfg := &Config{
		NowPaymentsAPIKey:    os.Getenv("NOWPAYMENTS_API_KEY"),
		NowPaymentsIPNSecret: os.Getenv("NOWPAYMENTS_IPN_SECRET"),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		SupportUsername:      getenv("SUPPORT_USERNAME", "support"),
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		Env:                  getenv("ENV", "dev"),
		SentryDSN:            os.Getenv("SENTRY_DSN"),
	}

	token := strings.TrimSpace(os.Getenv("TOKEN"))
	botID, err := parseBotToken(token)
	if err != nil {
		return nil, fmt.Errorf("TOKEN: %w", err)
	}
	cfg.BotToken = token
	cfg.BotID = botID
	log.Info("валидация TOKEN пройдена", zap.String("bot_id", botID))

	if cfg.NowPaymentsAPIKey == "" {
		return nil, fmt.Errorf("NOWPAYMENTS_API_KEY не задан")
	}
	if cfg.NowPaymentsIPNSecret == "" {
		log.Info("NOWPAYMENTS_IPN_SECRET пуст: проверка подписи вебхуков отключена")
	}

	cfg.PrimaryAdminIDs, cfg.SecondaryAdminIDs, cfg.LegacyAdminID = resolveAdmins(log)
	cfg.primarySet = toSet(cfg.PrimaryAdminIDs)
	cfg.secondarySet = toSet(cfg.SecondaryAdminIDs)

	cfg.BasketTimeout = basketTimeout(log, getenv("BASKET_TIMEOUT_MINUTES", "15"))

	cfg.DataDir = getenv("DATA_DIR", defaultDataDir)
	cfg.DatabasePath = filepath.Join(cfg.DataDir, "shop.db")
	cfg.MediaDir = filepath.Join(cfg.DataDir, "media")
	cfg.BotMediaPath = filepath.Join(cfg.DataDir, "bot_media.json")

	return cfg, nil
}

// basketTimeout переводит минуты из окружения в Duration.
// Мусор и неположительные значения откатываются к 15 минутам.
func basketTimeout(log *zap.Logger, raw string) time.Duration {
	mins, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Warn("BASKET_TIMEOUT_MINUTES не число, используем 15 минут", zap.String("value", raw))
		return defaultBasketTimeout
	}
	if mins <= 0 {
		log.Warn("BASKET_TIMEOUT_MINUTES неположителен, используем 15 минут", zap.Int("value", mins))
		return defaultBasketTimeout
	}
	return time.Duration(mins) * time.Minute
}

// EnsureDirs создаёт каталог медиа на диске. Ошибку решает вызывающий:
// оригинальный бот продолжает работу и без медиа.
func (c *Config) EnsureDirs() error {
	return os.MkdirAll(c.MediaDir, 0o755)
}

// Fields — сводка конфигурации для логов. Секреты маскируются.
func (c *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("bot_id", c.BotID),
		zap.String("nowpayments_api_key", mask(c.NowPaymentsAPIKey)),
		zap.Bool("ipn_signature_enabled", c.NowPaymentsIPNSecret != ""),
		zap.String("webhook_url", c.WebhookURL),
		zap.Int64s("primary_admins", c.PrimaryAdminIDs),
		zap.Int64s("secondary_admins", c.SecondaryAdminIDs),
		zap.Duration("basket_timeout", c.BasketTimeout),
		zap.String("data_dir", c.DataDir),
		zap.String("support_username", c.SupportUsername),
	}
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
