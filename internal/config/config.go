package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Storage    StorageConfig    `yaml:"storage"`
	Pagination PaginationConfig `yaml:"pagination"`
	PDF        PDFConfig        `yaml:"pdf"`
	// SeedPath points at a JSON file of dummy rooms loaded at startup when
	// set. Rooms whose title already exists are skipped.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:""`
	// BaseURL is the public URL clients reach this service at; image and
	// PDF links in responses are composed from it.
	BaseURL      string   `yaml:"base_url" env:"BASE_URL" env-default:""`
	AllowOrigins []string `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" env:"DATABASE_DSN"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type StorageConfig struct {
	Root          string `yaml:"root" env:"STORAGE_ROOT" env-default:""`
	MaxUploadSize int64  `yaml:"max_upload_size" env-default:"0"`
}

type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env-default:"0"`
	MaxPageSize     int `yaml:"max_page_size" env-default:"0"`
}

type PDFConfig struct {
	RenderTimeout time.Duration `yaml:"render_timeout" env-default:"0s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.BaseURL == "" {
		c.HTTP.BaseURL = "http://localhost:8080"
	}
	if c.Storage.Root == "" {
		c.Storage.Root = "static"
	}
	if c.Storage.MaxUploadSize <= 0 {
		c.Storage.MaxUploadSize = 10 << 20
	}
	if c.Pagination.DefaultPageSize <= 0 {
		c.Pagination.DefaultPageSize = 20
	}
	if c.Pagination.MaxPageSize <= 0 {
		c.Pagination.MaxPageSize = 100
	}
	if c.PDF.RenderTimeout <= 0 {
		c.PDF.RenderTimeout = 30 * time.Second
	}
}
