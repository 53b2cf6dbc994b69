package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey      string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress  string        `mapstructure:"REDIS_SERVER_ADDRESS"`

	// SMTP settings are optional. When any of host, username or password is
	// missing the mailer runs disabled and notifications are recorded with
	// email_sent=false instead of failing.
	SMTPHost           string `mapstructure:"SMTP_HOST"`
	SMTPPort           int    `mapstructure:"SMTP_PORT"`
	SMTPUsername       string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword       string `mapstructure:"SMTP_PASSWORD"`
	EmailSenderName    string `mapstructure:"EMAIL_SENDER_NAME"`
	EmailSenderAddress string `mapstructure:"EMAIL_SENDER_ADDRESS"`

	CheckInterval    time.Duration `mapstructure:"CHECK_INTERVAL"`
	CycleTimeout     time.Duration `mapstructure:"CYCLE_TIMEOUT"`
	EmailSendTimeout time.Duration `mapstructure:"EMAIL_SEND_TIMEOUT"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:5000")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "1h")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_SENDER_NAME", "PKWT Management System")
	viper.SetDefault("CHECK_INTERVAL", "1h")
	viper.SetDefault("CYCLE_TIMEOUT", "10m")
	viper.SetDefault("EMAIL_SEND_TIMEOUT", "15s")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.CheckInterval <= 0 {
		return fmt.Errorf("CHECK_INTERVAL must be positive")
	}

	return nil
}

// SMTPConfigured reports whether all required SMTP settings are present.
func (config Config) SMTPConfigured() bool {
	return config.SMTPHost != "" && config.SMTPUsername != "" && config.SMTPPassword != ""
}
