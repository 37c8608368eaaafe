package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Activity ActivityConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int

	// How long the doctor-name listing stays cached.
	NameCacheTTL time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// ActivityConfig drives the appointment activity-window evaluator.
type ActivityConfig struct {
	// Span of the window; defaults to one hour.
	WindowDuration time.Duration
	// "forward" (T <= now < T+d) or "backward" (now-d <= T <= now).
	WindowPolicy string
	// Reference timezone for "now" and for interpreting stored local
	// dates and times.
	Timezone string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; the environment still feeds AutomaticEnv.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	windowDuration, err := time.ParseDuration(viper.GetString("ACTIVITY_WINDOW_DURATION"))
	if err != nil {
		windowDuration = time.Hour
	}

	nameCacheTTL, err := time.ParseDuration(viper.GetString("REDIS_NAME_CACHE_TTL"))
	if err != nil {
		nameCacheTTL = 5 * time.Minute
	}

	smtpTimeout, err := time.ParseDuration(viper.GetString("SMTP_TIMEOUT"))
	if err != nil {
		smtpTimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: withDefault(viper.GetString("APP_PORT"), "5000"),
			Env:  withDefault(viper.GetString("APP_ENV"), "development"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:         viper.GetString("REDIS_HOST"),
			Port:         viper.GetString("REDIS_PORT"),
			Password:     viper.GetString("REDIS_PASSWORD"),
			DB:           viper.GetInt("REDIS_DB"),
			NameCacheTTL: nameCacheTTL,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
			Timeout:  smtpTimeout,
		},
		Activity: ActivityConfig{
			WindowDuration: windowDuration,
			WindowPolicy:   withDefault(viper.GetString("ACTIVITY_WINDOW_POLICY"), "forward"),
			Timezone:       withDefault(viper.GetString("ACTIVITY_TIMEZONE"), "Asia/Karachi"),
		},
	}

	return config, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
