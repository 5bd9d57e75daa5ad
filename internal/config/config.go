package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".carshare"
	envPrefix  = "CARSHARE"

	UsersBaseURLKey        = "users.base_url"
	VehiclesBaseURLKey     = "vehicles.base_url"
	ReservationsBaseURLKey = "reservations.base_url"
	BillingBaseURLKey      = "billing.base_url"
	SessionPathKey         = "session.path"
	SessionBackendKey      = "session.backend"
	LogLevelKey            = "log.level"
)

// Session backends. A memory session lives only as long as one command run.
const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
)

type Config struct {
	UsersBaseURL        string
	VehiclesBaseURL     string
	ReservationsBaseURL string
	BillingBaseURL      string
	SessionPath         string
	SessionBackend      string
	LogLevel            string
}

// Load resolves configuration from defaults, ~/.carshare/config.toml, an optional
// .env file in the working directory and CARSHARE_* environment variables, in
// increasing order of precedence.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env file: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))

	v.SetDefault(UsersBaseURLKey, "http://localhost:5001/api/v1")
	v.SetDefault(VehiclesBaseURLKey, "http://localhost:5000")
	v.SetDefault(ReservationsBaseURLKey, "http://localhost:5000")
	v.SetDefault(BillingBaseURLKey, "http://localhost:5002")
	v.SetDefault(SessionPathKey, filepath.Join(homeDir, configDir, "session.toml"))
	v.SetDefault(SessionBackendKey, SessionBackendFile)
	v.SetDefault(LogLevelKey, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		UsersBaseURL:        normalizeBaseURL(v.GetString(UsersBaseURLKey)),
		VehiclesBaseURL:     normalizeBaseURL(v.GetString(VehiclesBaseURLKey)),
		ReservationsBaseURL: normalizeBaseURL(v.GetString(ReservationsBaseURLKey)),
		BillingBaseURL:      normalizeBaseURL(v.GetString(BillingBaseURLKey)),
		SessionPath:         v.GetString(SessionPathKey),
		SessionBackend:      strings.ToLower(strings.TrimSpace(v.GetString(SessionBackendKey))),
		LogLevel:            v.GetString(LogLevelKey),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	sessionPath, err := filepath.Abs(cfg.SessionPath)
	if err != nil {
		return Config{}, fmt.Errorf("resolve session path: %w", err)
	}
	cfg.SessionPath = filepath.Clean(sessionPath)

	return cfg, nil
}

func (c Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{UsersBaseURLKey, c.UsersBaseURL},
		{VehiclesBaseURLKey, c.VehiclesBaseURL},
		{ReservationsBaseURLKey, c.ReservationsBaseURL},
		{BillingBaseURLKey, c.BillingBaseURL},
		{SessionPathKey, c.SessionPath},
	}

	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			return fmt.Errorf("config %s is empty", entry.key)
		}
	}

	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendMemory:
	default:
		return fmt.Errorf("config %s must be %q or %q, got %q", SessionBackendKey, SessionBackendFile, SessionBackendMemory, c.SessionBackend)
	}

	return nil
}

func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
