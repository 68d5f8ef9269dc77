package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-required:""`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	DB struct {
		DSN string `yaml:"dsn" env:"DSN" env-required:""`
	} `yaml:"db" env-prefix:"DB_" env-required:""`

	JWT struct {
		AccessTokenTTL   time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"2h"`
		AuthorizationTTL time.Duration `yaml:"authorization_ttl" env:"AUTHORIZATION_TTL" env-default:"720h"`
		Secret           string        `yaml:"secret" env:"SECRET" env-required:""`
	} `yaml:"jwt" env-prefix:"JWT_" env-required:""`

	Catalog struct {
		BaseURL string `yaml:"base_url" env:"BASE_URL" env-default:"https://api.api-ninjas.com/v1"`
		APIKey  string `yaml:"api_key" env:"API_KEY" env-required:""`
	} `yaml:"catalog" env-prefix:"CATALOG_" env-required:""`

	Images struct {
		BaseURL        string `yaml:"base_url" env:"BASE_URL" env-default:"https://www.googleapis.com/customsearch/v1"`
		APIKey         string `yaml:"api_key" env:"API_KEY" env-required:""`
		SearchEngineID string `yaml:"search_engine_id" env:"SEARCH_ENGINE_ID" env-required:""`
	} `yaml:"images" env-prefix:"IMAGES_" env-required:""`

	Music struct {
		AccountsURL  string `yaml:"accounts_url" env:"ACCOUNTS_URL" env-default:"https://accounts.spotify.com"`
		APIURL       string `yaml:"api_url" env:"API_URL" env-default:"https://api.spotify.com/v1"`
		ClientID     string `yaml:"client_id" env:"CLIENT_ID" env-required:""`
		ClientSecret string `yaml:"client_secret" env:"CLIENT_SECRET" env-required:""`
	} `yaml:"music" env-prefix:"MUSIC_" env-required:""`
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
