package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress         = "localhost:8080"
	defaultMigrationsDir      = "internal/db/migrations"
	defaultBinanceBaseURL     = "https://api.binance.com"
	defaultAutoVerifyInterval = time.Minute
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	// JWTSecret подпись токенов сессии.
	JWTSecret string `env:"JWT_SECRET"`
	// EncryptionKey мастер-секрет для шифрования ключей Binance в базе.
	EncryptionKey      string        `env:"ENCRYPTION_KEY"`
	BinanceBaseURL     string        `env:"BINANCE_BASE_URL"`
	AutoVerifyInterval time.Duration `env:"AUTO_VERIFY_INTERVAL"`
	// Учетка администратора, создается при старте если задана.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// String не выводит секреты, конфиг пишется в лог при старте.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s BinanceBaseURL:%s AutoVerifyInterval:%s AdminEmail:%s}",
		c.RunAddress, c.MigrationsDir, c.BinanceBaseURL, c.AutoVerifyInterval, c.AdminEmail,
	)
}

func LoadConfig() (*Config, error) {
	// .env нужен только для локальной разработки
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	flagsConfig, flagsErr := parseFlags(args)
	if flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseDSN == "":
		return errors.New("database DSN is not set")
	case c.JWTSecret == "":
		return errors.New("JWT secret is not set")
	case c.EncryptionKey == "":
		return errors.New("encryption key is not set")
	case c.AutoVerifyInterval <= 0:
		return fmt.Errorf("auto verify interval must be positive, got %s", c.AutoVerifyInterval)
	}
	return nil
}

func parseFlags(args []string) (*Config, error) {
	var flagConfig Config
	flags := flag.NewFlagSet("ucstore", flag.ContinueOnError)

	flags.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	flags.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	flags.StringVar(&flagConfig.EncryptionKey, "k", "", "Master key for stored API credentials")
	flags.StringVar(&flagConfig.BinanceBaseURL, "b", defaultBinanceBaseURL, "Binance API base URL")
	flags.DurationVar(&flagConfig.AutoVerifyInterval, "i", defaultAutoVerifyInterval, "Deposit auto verification interval")

	if err := flags.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &flagConfig, nil
}

// mergeConfig значения из окружения приоритетнее флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	interval := envConfig.AutoVerifyInterval
	if interval == 0 {
		interval = flagsConfig.AutoVerifyInterval
	}
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:          defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		EncryptionKey:      defaultIfBlank(envConfig.EncryptionKey, flagsConfig.EncryptionKey),
		BinanceBaseURL:     defaultIfBlank(envConfig.BinanceBaseURL, flagsConfig.BinanceBaseURL),
		AutoVerifyInterval: interval,
		AdminEmail:         envConfig.AdminEmail,
		AdminPassword:      envConfig.AdminPassword,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
