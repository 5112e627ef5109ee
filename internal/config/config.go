package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"taskboard/internal/directory"
	"taskboard/pkg/config"
)

type Config struct {
	Server config.ServerConfig `yaml:"server"`
	DB     config.DBConfig     `yaml:"db"`
	Redis  config.RedisConfig  `yaml:"redis"`
	MQ     config.MQConfig     `yaml:"mq"`
	// Team is the fixed assignee table. Empty falls back to the built-in
	// default members.
	Team []directory.Member `yaml:"team"`
}

func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	// Environment variables win over files.
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideMQFromEnv(&cfg.MQ)

	return &cfg
}
