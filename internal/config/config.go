// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `mapstructure:"env"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	App        AppConfig        `mapstructure:"app"`
	Auth       AuthConfig       `mapstructure:"auth"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Review     ReviewConfig     `mapstructure:"review"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Mailer     MailerConfig     `mapstructure:"mailer"`
	Reminder   ReminderConfig   `mapstructure:"reminder"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// RequestTimeout cancels a handler's context; it must end before WriteTimeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	Name                string `mapstructure:"name"`
	ReviewLimit         int    `mapstructure:"review_limit"`
	AllowDuplicateTerms bool   `mapstructure:"allow_duplicate_terms"`
}

// AuthConfig.Enabled=false swaps JWT validation for the X-User-ID development header.
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ReviewConfig struct {
	RelearnInterval time.Duration `mapstructure:"relearn_interval"`
}

type OpenAIConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Model          string        `mapstructure:"model"`
	TargetLanguage string        `mapstructure:"target_language"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

type DictionaryConfig struct {
	DictionaryKey string        `mapstructure:"dictionary_key"`
	ThesaurusKey  string        `mapstructure:"thesaurus_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type MailerConfig struct {
	Driver string     `mapstructure:"driver"` // log | smtp | ses
	From   string     `mapstructure:"from"`
	SMTP   SMTPConfig `mapstructure:"smtp"`
	SES    SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // iam_role | static_credentials
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type ReminderConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// IsDev reports whether the service runs in the development environment.
func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// LoadConfig reads path/config.yaml, a .env file in the working directory and
// APP_ prefixed environment variables, in increasing priority.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys kept under their conventional names.
	_ = v.BindEnv("openai.api_key", "APP_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("dictionary.dictionary_key", "APP_DICTIONARY_DICTIONARY_KEY", "MW_DICTIONARY_API_KEY")
	_ = v.BindEnv("dictionary.thesaurus_key", "APP_DICTIONARY_THESAURUS_KEY", "MW_THESAURUS_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.name", AppName)
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("app.allow_duplicate_terms", true)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("review.relearn_interval", 24*time.Hour)
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.target_language", "Russian")
	v.SetDefault("openai.timeout", 15*time.Second)
	v.SetDefault("dictionary.timeout", 10*time.Second)
	v.SetDefault("mailer.driver", "log")
	v.SetDefault("mailer.from", "no-reply@vocab-trainer.local")
	v.SetDefault("mailer.smtp.host", "")
	v.SetDefault("mailer.smtp.port", 587)
	v.SetDefault("mailer.smtp.username", "")
	v.SetDefault("mailer.smtp.password", "")
	v.SetDefault("mailer.ses.region", "")
	v.SetDefault("mailer.ses.auth_type", "iam_role")
	v.SetDefault("mailer.ses.access_key_id", "")
	v.SetDefault("mailer.ses.secret_access_key", "")
	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.interval", time.Hour)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.RequestTimeout <= 0 || c.Server.RequestTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("config: server.request_timeout must be positive and below server.write_timeout (%s)", c.Server.WriteTimeout)
	}
	if c.App.ReviewLimit <= 0 {
		c.App.ReviewLimit = DefaultAppReviewLimit
	}
	if c.Review.RelearnInterval <= 0 {
		return fmt.Errorf("config: review.relearn_interval must be positive")
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		return fmt.Errorf("config: jwt.secret_key is required when auth is enabled")
	}
	if c.Reminder.Enabled && c.Reminder.Interval <= 0 {
		return fmt.Errorf("config: reminder.interval must be positive")
	}
	return nil
}
