package bigclient

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Static errors for err113 compliance.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidRetryWait = errors.New("retry_wait_min must not exceed retry_wait_max")
)

// settings mirrors the keys LoadConfig understands.
type settings struct {
	StoreHash    string        `mapstructure:"store_hash"`
	AccessToken  string        `mapstructure:"access_token"`
	APIEndpoint  string        `mapstructure:"api_endpoint"`
	Timeout      time.Duration `mapstructure:"timeout"`
	GetRetries   int           `mapstructure:"get_retries"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
	UserAgent    string        `mapstructure:"user_agent"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFormat    string        `mapstructure:"log_format"`
}

var settingKeys = []string{
	"store_hash",
	"access_token",
	"api_endpoint",
	"timeout",
	"get_retries",
	"retry_wait_min",
	"retry_wait_max",
	"user_agent",
	"log_level",
	"log_format",
	"config_file",
}

// LoadConfig builds a Config from the environment. The given dotenv files are
// loaded first (".env" when none is given, if it exists); variables already
// set in the environment win over them. Keys are read from BIGC_* variables
// and from the YAML file named by BIGC_CONFIG_FILE, in that order of
// precedence.
func LoadConfig(envFiles ...string) (*bigc.Config, error) {
	err := loadEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range settingKeys {
		_ = v.BindEnv(key)
	}

	if configFile := v.GetString("config_file"); configFile != "" {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg settings

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	err = validate(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &bigc.Config{
		StoreHash:    cfg.StoreHash,
		AccessToken:  cfg.AccessToken,
		APIEndpoint:  cfg.APIEndpoint,
		Timeout:      cfg.Timeout,
		GetRetries:   cfg.GetRetries,
		RetryWaitMin: cfg.RetryWaitMin,
		RetryWaitMax: cfg.RetryWaitMax,
		UserAgent:    cfg.UserAgent,
		Logger:       &logger,
	}, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		return nil
	}

	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_endpoint", constants.DefaultAPIEndpoint)
	v.SetDefault("get_retries", constants.DefaultGetRetries)
	v.SetDefault("retry_wait_min", constants.DefaultRetryWaitMin)
	v.SetDefault("retry_wait_max", constants.DefaultRetryWaitMax)
	v.SetDefault("user_agent", constants.DefaultUserAgent)

	// Logging defaults
	v.SetDefault("log_level", constants.DefaultLogLevel)
	v.SetDefault("log_format", "console")
}

// validate checks if the configuration is valid.
func validate(cfg *settings) error {
	if cfg.StoreHash == "" {
		return bigc.ErrStoreHashRequired
	}

	if cfg.AccessToken == "" {
		return bigc.ErrAccessTokenRequired
	}

	if cfg.GetRetries < 0 {
		return fmt.Errorf("%w: %d", bigc.ErrNegativeRetries, cfg.GetRetries)
	}

	if cfg.RetryWaitMin > cfg.RetryWaitMax {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRetryWait, cfg.RetryWaitMin, cfg.RetryWaitMax)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.LogFormat] {
		return fmt.Errorf("%w: %s", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return nil
}

func newLogger(level, format string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}

	if format == "json" {
		return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger(), nil
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(parsed).With().Timestamp().Logger(), nil
}
