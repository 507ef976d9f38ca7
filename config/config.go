package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration, read from DECADAL_* environment
// variables after loading a local .env if one exists.
type Config struct {
	// DataPath is the track CSV, relative to the working directory.
	DataPath string `default:"data/data.csv"`
	// ListenAddr is the HTTP listen address.
	ListenAddr string `default:":8080"`
}

func ProvideConfig() Config {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("decadal", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
