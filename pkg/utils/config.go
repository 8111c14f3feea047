package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Store  StoreConfig
	Client ClientConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	// Mode selects which surface the server mounts: "full" exposes the
	// whole CRUD store, "readonly" only the /api/{resource} list reads.
	Mode string
}

type StoreConfig struct {
	// Driver is "file" (flat db.json document store) or "postgres".
	Driver   string
	File     string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// ClientConfig is consumed by the API client side: which transport mode
// to use and where the store lives. Resolved once at startup, never
// sniffed at call time.
type ClientConfig struct {
	BaseURL string
	Mode    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SERVER_MODE", "full")
	viper.SetDefault("STORE_DRIVER", "file")
	viper.SetDefault("DB_FILE", "db.json")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("API_BASE", "http://localhost:3000")
	viper.SetDefault("TRANSPORT_MODE", "rest")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, defaults plus environment apply.
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			Mode:    viper.GetString("SERVER_MODE"),
		},
		Store: StoreConfig{
			Driver:   viper.GetString("STORE_DRIVER"),
			File:     viper.GetString("DB_FILE"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Client: ClientConfig{
			BaseURL: viper.GetString("API_BASE"),
			Mode:    viper.GetString("TRANSPORT_MODE"),
		},
	}

	return config, nil
}
