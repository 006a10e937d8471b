package config

import (
	"fmt"
	"strings"
)

const minTokenSecretLen = 30

// parseBotToken проверяет форму "bot_id:secret" и возвращает числовой bot_id.
// Секретная часть в текст ошибок не попадает.
func parseBotToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("переменная не задана")
	}
	if !strings.Contains(token, ":") {
		return "", fmt.Errorf("нет разделителя ':' (ожидается bot_id:secret)")
	}
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("ожидается ровно один ':' (формат bot_id:secret)")
	}
	if !isDigits(parts[0]) {
		return "", fmt.Errorf("bot_id %q не числовой", parts[0])
	}
	if len(parts[1]) < minTokenSecretLen {
		return "", fmt.Errorf("секретная часть короче %d символов", minTokenSecretLen)
	}
	return parts[0], nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
