package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	LogLevel   string `mapstructure:"log_level"`
	BoardSize  int    `mapstructure:"board_size"`
	StopOnWin  bool   `mapstructure:"stop_on_win"`
}

func DefaultConfig() Config {
	settings := DefaultGameSettings()
	return Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		BoardSize:  settings.BoardSize,
		StopOnWin:  settings.StopOnWin,
	}
}

// LoadConfig reads defaults, then the optional file at path, then GOMOKU_*
// environment variables, in increasing priority.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("board_size", defaults.BoardSize)
	v.SetDefault("stop_on_win", defaults.StopOnWin)

	v.SetEnvPrefix("GOMOKU")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < minBoardSize {
		return fmt.Errorf("invalid config: board_size %d is below %d", c.BoardSize, minBoardSize)
	}
	if c.ListenAddr == "" {
		return errors.New("invalid config: listen_addr is empty")
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid config: log_level: %w", err)
	}
	return nil
}

func (c Config) GameSettings() GameSettings {
	return GameSettings{
		BoardSize: c.BoardSize,
		StopOnWin: c.StopOnWin,
	}
}
