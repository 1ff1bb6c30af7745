package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the booking backend, loaded from
// environment variables with the BOOKING_ prefix.
type Config struct {
	Port   string
	AppEnv string

	DB    DatabaseConfig
	Kafka KafkaConfig
	Admin AdminConfig
	SMTP  SMTPConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the keyword/value connection string for gorm's postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the postgres:// URL used by golang-migrate.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds Kafka broker settings.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// AdminConfig holds the administrator credential and token settings.
type AdminConfig struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenTTLMin  int
}

// SMTPConfig holds outbound mail settings.
type SMTPConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	FromAddress   string
	OperatorEmail string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "booking")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_group_prefix", "sthemsandsaves.")
	v.SetDefault("admin_token_ttl_min", 60)
	v.SetDefault("smtp_port", 587)

	cfg := &Config{
		Port:   v.GetString("port"),
		AppEnv: v.GetString("app_env"),
		DB: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Kafka: KafkaConfig{
			Brokers:     strings.Split(v.GetString("kafka_brokers"), ","),
			GroupPrefix: v.GetString("kafka_group_prefix"),
		},
		Admin: AdminConfig{
			Email:        v.GetString("admin_email"),
			PasswordHash: v.GetString("admin_password_hash"),
			JWTSecret:    v.GetString("admin_jwt_secret"),
			TokenTTLMin:  v.GetInt("admin_token_ttl_min"),
		},
		SMTP: SMTPConfig{
			Host:          v.GetString("smtp_host"),
			Port:          v.GetInt("smtp_port"),
			User:          v.GetString("smtp_user"),
			Password:      v.GetString("smtp_password"),
			FromAddress:   v.GetString("smtp_from"),
			OperatorEmail: v.GetString("smtp_operator_email"),
		},
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.Admin.JWTSecret == "" {
		return nil, fmt.Errorf("BOOKING_ADMIN_JWT_SECRET is required")
	}
	if cfg.Admin.PasswordHash == "" {
		return nil, fmt.Errorf("BOOKING_ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}
