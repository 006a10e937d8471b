package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// resolveAdmins повторяет порядок разрешения оригинального бота:
// PRIMARY_ADMIN_IDS главнее; ADMIN_ID — запасной источник для пустого списка,
// а первый primary, наоборот, заполняет пустой ADMIN_ID для старых потребителей.
func resolveAdmins(log *zap.Logger) ([]int64, []int64, *int64) {
	primary, err := parseIDList(os.Getenv("PRIMARY_ADMIN_IDS"))
	if err != nil {
		log.Warn("PRIMARY_ADMIN_IDS содержит нечисловые значения, список игнорируется", zap.Error(err))
		primary = nil
	}

	var legacy *int64
	if raw, ok := os.LookupEnv("ADMIN_ID"); ok {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			log.Error("ADMIN_ID задан, но не является целым числом", zap.String("value", raw))
		} else {
			legacy = &id
			if len(primary) == 0 {
				primary = []int64{id}
			}
		}
	}

	if len(primary) > 0 && legacy == nil {
		first := primary[0]
		legacy = &first
	}

	if len(primary) == 0 {
		log.Warn("primary-админы не заданы: админ-функции будут отключены")
	} else {
		log.Info("загружены primary-админы", zap.Int("count", len(primary)), zap.Int64s("ids", primary))
	}
	if legacy == nil {
		log.Warn("ADMIN_ID не задан или некорректен: часть legacy-функций не будет работать")
	}

	secondary, err := parseIDList(os.Getenv("SECONDARY_ADMIN_IDS"))
	if err != nil {
		log.Warn("SECONDARY_ADMIN_IDS содержит нечисловые значения, список игнорируется", zap.Error(err))
		secondary = nil
	}
	log.Info("загружены secondary-админы", zap.Int("count", len(secondary)), zap.Int64s("ids", secondary))

	return primary, secondary, legacy
}

// parseIDList разбирает список вида "1, 2,3". Любой нечисловой токен
// отбрасывает весь список целиком: частичное применение запрещено.
func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var ids []int64
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("некорректный id %q: %w", tok, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IsPrimaryAdmin — полный доступ к админке.
func (c *Config) IsPrimaryAdmin(userID int64) bool {
	_, ok := c.primarySet[userID]
	return ok
}

// IsSecondaryAdmin — ограниченный админский доступ.
func (c *Config) IsSecondaryAdmin(userID int64) bool {
	_, ok := c.secondarySet[userID]
	return ok
}

// IsAnyAdmin — любой уровень админки.
func (c *Config) IsAnyAdmin(userID int64) bool {
	return c.IsPrimaryAdmin(userID) || c.IsSecondaryAdmin(userID)
}

func toSet(ids []int64) map[int64]struct{} {
	m := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
