package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/campushub/clubhub/internal/xtime"
	"github.com/campushub/clubhub/server/auth"
	"github.com/campushub/clubhub/server/database"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:      ":8085",
			PublicURL: "http://localhost:8085",
		},
		Database: database.Config{
			Path: "clubhub.db",
		},
		Auth: auth.Config{
			SessionTTL: xtime.Duration(30 * 24 * time.Hour),
			BcryptCost: 12,
			LoginEvery: xtime.Duration(1 * time.Second),
			LoginBurst: 5,
		},
		SeedSampleData: true,
	}
}

type Config struct {
	Dev            bool            `toml:"dev"`
	SeedSampleData bool            `toml:"seed_sample_data"`
	Log            LogConfig       `toml:"log"`
	Server         ServerConfig    `toml:"server"`
	Database       database.Config `toml:"database"`
	Auth           auth.Config     `toml:"auth"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nSeedSampleData: %t\nLog: %s\nServer: %s\nDatabase: %s\nAuth: %s",
		c.Dev,
		c.SeedSampleData,
		c.Log,
		c.Server,
		c.Database,
		c.Auth,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	PublicURL string `toml:"public_url"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n PublicURL: %s",
		c.Addr,
		c.PublicURL,
	)
}
