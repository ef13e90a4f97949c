package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"shift-wage-bot/internal/model"
)

type Config struct {
	TelegramToken string
	DBPath        string
	LogLevel      string
	Timezone      string
	// HTTPAddr пустой — HTTP API не запускается
	HTTPAddr  string
	Workers   int
	QueueSize int

	DefaultHourlyWage        float64
	DefaultTaxPercent        float64
	DefaultBaseHours         float64
	DefaultBaseHoursSpecial  float64
	DefaultStartWorkOnSunday bool
}

// LoadConfig читает .env (если он есть) и переменные окружения.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, ErrNoToken{}
	}
	cfg := &Config{
		TelegramToken:            token,
		DBPath:                   getEnv("DB_PATH", "salary-bot.db"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		Timezone:                 getEnv("TIMEZONE", "Local"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ""),
		Workers:                  getEnvInt("WORKERS", 4),
		QueueSize:                getEnvInt("QUEUE_SIZE", 32),
		DefaultHourlyWage:        getEnvFloat("DEFAULT_HOURLY_WAGE", 0),
		DefaultTaxPercent:        getEnvFloat("DEFAULT_TAX_PERCENT", 0),
		DefaultBaseHours:         getEnvFloat("DEFAULT_BASE_HOURS", model.DefaultBaseHours),
		DefaultBaseHoursSpecial:  getEnvFloat("DEFAULT_BASE_HOURS_SPECIAL", model.DefaultBaseHours),
		DefaultStartWorkOnSunday: getEnvBool("DEFAULT_START_ON_SUNDAY", false),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN не задан в окружении"
}

func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("WORKERS must be positive")
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("QUEUE_SIZE must not be negative")
	}
	if c.DefaultHourlyWage < 0 {
		return fmt.Errorf("DEFAULT_HOURLY_WAGE must not be negative")
	}
	if c.DefaultTaxPercent < 0 || c.DefaultTaxPercent > 100 {
		return fmt.Errorf("DEFAULT_TAX_PERCENT must be between 0 and 100")
	}
	if c.DefaultBaseHours < 0 || c.DefaultBaseHoursSpecial < 0 {
		return fmt.Errorf("DEFAULT_BASE_HOURS and DEFAULT_BASE_HOURS_SPECIAL must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс, в котором бот понимает время смен.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// WageDefaults — настройки для сотрудника, который ещё ничего не настраивал.
func (c Config) WageDefaults() model.WageSettings {
	s := model.DefaultWageSettings()
	s.HourlyWage = c.DefaultHourlyWage
	s.TaxDeductionPercent = c.DefaultTaxPercent
	s.BaseHoursWeekday = c.DefaultBaseHours
	s.BaseHoursSpecialDay = c.DefaultBaseHoursSpecial
	s.StartWorkOnSunday = c.DefaultStartWorkOnSunday
	return s
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.ReplaceAll(os.Getenv(key), ",", ".")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
