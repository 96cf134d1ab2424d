package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTP     `yaml:"http"`
	Database Database `yaml:"database"`
	Session  Session  `yaml:"session"`
	Log      Log      `yaml:"log"`
}

type HTTP struct {
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:":3000"`
	Timeout time.Duration `yaml:"timeout" env-default:"4s"`
}

type Database struct {
	Driver      string `yaml:"driver" env:"DB_DRIVER" env-default:"stoolap"`
	DSN         string `yaml:"dsn" env:"DB_DSN" env-default:"file://./data/grocery.db"`
	Username    string `yaml:"username" env:"DB_USERNAME" env-default:""`
	Password    string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	MinPoolSize int    `yaml:"min_pool_size" env:"DB_MIN_POOL_SIZE" env-default:"5"`
	MaxPoolSize int    `yaml:"max_pool_size" env:"DB_MAX_POOL_SIZE" env-default:"20"`
}

type Session struct {
	Secret string        `yaml:"secret" env:"SESSION_SECRET" env-default:"local-dev-secret"`
	TTL    time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exists: %v\n", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("error reading config: %v", err)
	}

	return &cfg
}
