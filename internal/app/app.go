package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB        ConfigDB        `yaml:"db"`
	CfgRedis     ConfigRedis     `yaml:"redis"`
	CfgKafka     ConfigKafka     `yaml:"kafka"`
	CfgRateLimit ConfigRateLimit `yaml:"rate_limit"`
	MaxOpenConns int             `yaml:"max_open_conns"`
	ServerPort   string          `yaml:"srv_port"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigRedis struct {
	Addr string `yaml:"addr"`
}

type ConfigKafka struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// ConfigRateLimit - фиксированное окно для маршрута приема отзывов
type ConfigRateLimit struct {
	Limit  int64         `yaml:"limit"`
	Window time.Duration `yaml:"window"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
