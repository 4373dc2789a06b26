package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	BookingAPI BookingAPIConfig
	Checkout   CheckoutConfig
	Admin      AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BookingAPIConfig struct {
	URL            string
	TimeoutSeconds int
}

func (c BookingAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type CheckoutConfig struct {
	SubmitTimeoutSeconds int
	SessionTTLMinutes    int
}

func (c CheckoutConfig) SubmitTimeout() time.Duration {
	return time.Duration(c.SubmitTimeoutSeconds) * time.Second
}

func (c CheckoutConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

type AdminConfig struct {
	// KeyHash is the bcrypt hash of the admin API key.
	KeyHash string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "lab-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("BOOKING_API_URL", "http://localhost:9090/api")
	v.SetDefault("BOOKING_API_TIMEOUT_SECONDS", 10)
	v.SetDefault("SUBMIT_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_TTL_MINUTES", 120)
}

// LoadConfig reads path (an .env file) when it exists and lets environment
// variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		BookingAPI: BookingAPIConfig{
			URL:            v.GetString("BOOKING_API_URL"),
			TimeoutSeconds: v.GetInt("BOOKING_API_TIMEOUT_SECONDS"),
		},
		Checkout: CheckoutConfig{
			SubmitTimeoutSeconds: v.GetInt("SUBMIT_TIMEOUT_SECONDS"),
			SessionTTLMinutes:    v.GetInt("SESSION_TTL_MINUTES"),
		},
		Admin: AdminConfig{
			KeyHash: v.GetString("ADMIN_KEY_HASH"),
		},
	}

	return config, nil
}
