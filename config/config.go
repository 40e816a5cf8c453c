package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Platform  PlatformConfig  `yaml:"platform"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Worker    WorkerConfig    `yaml:"worker"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// PlatformConfig points at the charter platform REST API that owns the
// authoritative flight, aircraft and airport records.
type PlatformConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (p PlatformConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	FlightEventsTopic  string   `yaml:"flight_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type DashboardConfig struct {
	OperatorID       string `yaml:"operator_id"`
	OperatorTimezone string `yaml:"operator_timezone"`
	FlightsCacheTTL  int    `yaml:"flights_cache_ttl_seconds"`
	ActivityPageSize int    `yaml:"activity_page_size"`
}

type WorkerConfig struct {
	CacheWarmMinutes int `yaml:"cache_warm_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
