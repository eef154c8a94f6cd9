package config

import (
	"errors"
	"fmt"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

type fileConfig struct {
	DataPath     string `mapstructure:"data_path"`
	ServerAddr   string `mapstructure:"server_addr"`
	TopCustomers int    `mapstructure:"top_customers"`
}

// Load reads the optional application config file. With an empty path the
// working directory is searched for retail-atlas.yaml and a missing file
// yields the defaults; an explicit path that cannot be read is an error.
func Load(path string) (domain.AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("retail-atlas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetDefault("top_customers", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return domain.AppConfig{TopCustomers: 5}, nil
		}
		return domain.AppConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return domain.AppConfig{
		DataPath:     cfg.DataPath,
		ServerAddr:   cfg.ServerAddr,
		TopCustomers: cfg.TopCustomers,
	}, nil
}
