package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
	OpenAI    OpenAI    `mapstructure:",squash"`
	Gemini    Gemini    `mapstructure:",squash"`
	Audit     Audit     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	WriteTimeout   time.Duration `mapstructure:"server_write_timeout"`
}

type GoogleAds struct {
	TokenURL   string        `mapstructure:"google_oauth_token_url"`
	BaseURL    string        `mapstructure:"google_ads_base_url"`
	APIVersion string        `mapstructure:"google_ads_api_version"`
	Timeout    time.Duration `mapstructure:"google_ads_timeout"`
}

type OpenAI struct {
	URL     string        `mapstructure:"openai_url"`
	Model   string        `mapstructure:"openai_model"`
	Timeout time.Duration `mapstructure:"openai_timeout"`
}

type Gemini struct {
	BaseURL string        `mapstructure:"gemini_base_url"`
	Model   string        `mapstructure:"gemini_model"`
	Timeout time.Duration `mapstructure:"gemini_timeout"`
}

type Audit struct {
	Temperature float64 `mapstructure:"audit_temperature"`
	MaxTokens   int     `mapstructure:"audit_max_tokens"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("MAX_BODY_BYTES", 10<<20)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "180s")

	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v19")
	viper.SetDefault("GOOGLE_ADS_TIMEOUT", "60s")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_TIMEOUT", "120s")

	viper.SetDefault("GEMINI_BASE_URL", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "120s")

	viper.SetDefault("AUDIT_TEMPERATURE", 0.7)
	viper.SetDefault("AUDIT_MAX_TOKENS", 4000)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("viper could not read .env, relying on the process environment: ", err)
	}

	return decode()
}

func decode() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Audit.MaxTokens < 1 {
		return errors.Errorf("AUDIT_MAX_TOKENS must be at least 1, got %d", c.Audit.MaxTokens)
	}

	return nil
}

// loadEnvFile looks for a .env file in the working directory and its parents
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug(".env loaded from ", location)
			return
		}
	}

	logrus.Debug("no .env file found, using process environment")
}
