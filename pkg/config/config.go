package config

import (
	"os"
	"strconv"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// MQConfig holds the message broker settings. An empty URL disables
// event publishing.
type MQConfig struct {
	URL string `yaml:"url"`
}

// RedisConfig holds the cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        string `yaml:"port"`
	AllowOrigin string `yaml:"allow_origin"`
}

// OverrideDBFromEnv applies DB_* environment variables on top of cfg.
func OverrideDBFromEnv(cfg *DBConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}
}

// OverrideMQFromEnv applies MQ_URL on top of cfg.
func OverrideMQFromEnv(cfg *MQConfig) {
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.URL = url
	}
}

// OverrideRedisFromEnv applies REDIS_* environment variables on top of cfg.
func OverrideRedisFromEnv(cfg *RedisConfig) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Password = password
	}
}

// OverrideServerFromEnv applies SERVER_* environment variables on top of cfg.
func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
	if origin := os.Getenv("ALLOW_ORIGIN_URL"); origin != "" {
		cfg.AllowOrigin = origin
	}
}
