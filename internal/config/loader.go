package config

import (
	"fmt"

	"github.com/spf13/viper"
)

func defaults() Config {
	return Config{
		Log: LogConfig{
			Level:   "info",
			MaxSize: 64,
			MaxAge:  7,
		},
	}
}

func load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 64)
	v.SetDefault("log.max_age", 7)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", configPath, err)
	}
	return cfg, nil
}
