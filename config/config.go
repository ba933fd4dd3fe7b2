package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	NewsAPI    NewsAPIConfig
	Translator TranslatorConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type NewsAPIConfig struct {
	BaseURL  string
	APIKey   string
	PageSize int
}

type TranslatorConfig struct {
	URL    string
	APIKey string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "news")
	viper.SetDefault("MONGODB_COLLECTION", "articles")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("NEWS_API_BASE_URL", "https://newsapi.org/v2")
	viper.SetDefault("NEWS_API_PAGE_SIZE", 10)
	viper.SetDefault("TRANSLATOR_URL", "http://localhost:5000/translate")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Mode: viper.GetString("GIN_MODE"),
		},
		Mongo: MongoConfig{
			URI:        viper.GetString("MONGODB_URI"),
			Database:   viper.GetString("MONGODB_DATABASE"),
			Collection: viper.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		NewsAPI: NewsAPIConfig{
			BaseURL:  viper.GetString("NEWS_API_BASE_URL"),
			APIKey:   viper.GetString("NEWS_API_KEY"),
			PageSize: viper.GetInt("NEWS_API_PAGE_SIZE"),
		},
		Translator: TranslatorConfig{
			URL:    viper.GetString("TRANSLATOR_URL"),
			APIKey: viper.GetString("TRANSLATOR_API_KEY"),
		},
	}

	return cfg, nil
}
