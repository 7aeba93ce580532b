package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	MongoURI string
	Database string
	Port     string

	// Whether the settings were explicitly provided. The diagnostic
	// endpoint reports this; missing settings never abort startup.
	URISet  bool
	NameSet bool
}

func LoadConfig() *Config {
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "lingerie_shop")
	viper.SetDefault("PORT", "8000")
	viper.AutomaticEnv() // Load environment variables

	_, uriSet := os.LookupEnv("DATABASE_URL")
	_, nameSet := os.LookupEnv("DATABASE_NAME")

	return &Config{
		MongoURI: viper.GetString("DATABASE_URL"),
		Database: viper.GetString("DATABASE_NAME"),
		Port:     viper.GetString("PORT"),
		URISet:   uriSet,
		NameSet:  nameSet,
	}
}
