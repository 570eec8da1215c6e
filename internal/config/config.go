package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken string

	// Google Sheets
	SpreadsheetID         string
	GoogleCredentialsPath string // путь к JSON файлу (локальная разработка)
	GoogleCredentialsJSON string // JSON строкой в переменной окружения (деплой)

	// WebApp
	WebAppURL string // URL фронтенда для кнопки "Записать подход"
	Port      string // порт HTTP API

	// Напоминание о тренировке
	ReminderCron   string // расписание в формате cron, пусто — выключено
	ReminderChatID int64
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", ""),

		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		GoogleCredentialsPath: getEnv("GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),

		WebAppURL: getEnv("WEBAPP_URL", ""),
		Port:      getEnv("PORT", "8000"),

		ReminderCron: getEnv("REMINDER_CRON", ""),
	}

	if chatID := getEnv("REMINDER_CHAT_ID", ""); chatID != "" {
		if _, err := fmt.Sscanf(chatID, "%d", &cfg.ReminderChatID); err != nil {
			return nil, fmt.Errorf("REMINDER_CHAT_ID не число: %w", err)
		}
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не задан")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID не задан")
	}

	return cfg, nil
}

// loadEnvFile читает .env файл
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
