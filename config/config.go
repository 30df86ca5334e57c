package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the tunables for the game server.
type Config struct {
	ListenAddr     string
	DictionaryPath string
	NATSURL        string
	Debug          bool
}

// Load reads configuration from the environment (WUGBOARD_ prefix) and,
// if present, a wugboard.yaml file in the working directory. Environment
// variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("listen-addr", ":3004")
	v.SetDefault("dictionary-path", "./data/cmudict-ipa.json")
	v.SetDefault("nats-url", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("wugboard")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("wugboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		ListenAddr:     v.GetString("listen-addr"),
		DictionaryPath: v.GetString("dictionary-path"),
		NATSURL:        v.GetString("nats-url"),
		Debug:          v.GetBool("debug"),
	}, nil
}
