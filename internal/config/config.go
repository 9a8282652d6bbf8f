// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | sqlite
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogSQL          bool          `mapstructure:"log_sql"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AppConfig はドメイン固有の上限値と基準タイムゾーン
type AppConfig struct {
	ReviewLimit         int    `mapstructure:"review_limit"`
	VocabLimitDefault   int    `mapstructure:"vocab_limit_default"`
	VocabLimitMax       int    `mapstructure:"vocab_limit_max"`
	Timezone            string `mapstructure:"timezone"`
	TimezoneOffsetHours int    `mapstructure:"timezone_offset_hours"`
}

type SRSConfig struct {
	InitialEase float64 `mapstructure:"initial_ease"`
	EasyBonus   float64 `mapstructure:"easy_bonus"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MailerConfig selects how due-review reminders are delivered.
type MailerConfig struct {
	Type string `mapstructure:"type"` // log | smtp
	From string `mapstructure:"from"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
	SRS      SRSConfig      `mapstructure:"srs"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
}

var Cfg Config

var envKeys = []string{
	"server.port",
	"database.driver", "database.url", "database.log_sql",
	"log.level",
	"app.review_limit", "app.vocab_limit_default", "app.vocab_limit_max", "app.timezone",
	"srs.easy_bonus",
	"redis.enabled", "redis.addr", "redis.password", "redis.db", "redis.ttl",
	"mailer.type", "mailer.from", "smtp.host", "smtp.port",
}

// Flags はコマンドラインから上書きできる設定を登録します
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "configs", "directory containing config.yaml")
	fs.String("port", "", "listen address, e.g. :8080")
	fs.String("db-driver", "", "database driver (postgres|sqlite)")
	fs.String("db-url", "", "database DSN")
	fs.String("log-level", "", "log level (debug|info|warn|error)")
}

// LoadConfig reads <path>/config.yaml, APP_* environment variables and, when
// fs is non-nil, command-line flags (highest precedence). The result is stored
// in Cfg and also returned.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if fs != nil {
		if dir, err := fs.GetString("config"); err == nil && dir != "" {
			path = dir
		}
	}
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("env", "APP_ENV")
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range envKeys {
		v.BindEnv(key)
	}

	if fs != nil {
		bindFlag(v, fs, "server.port", "port")
		bindFlag(v, fs, "database.driver", "db-driver")
		bindFlag(v, fs, "database.url", "db-url")
		bindFlag(v, fs, "log.level", "log-level")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.", slog.String("path", path))
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return nil, err
	}

	applyDefaults(&cfg)
	Cfg = cfg

	slog.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Int("review_limit", cfg.App.ReviewLimit),
		slog.Int("vocab_limit_default", cfg.App.VocabLimitDefault),
		slog.String("timezone", cfg.App.Timezone),
		slog.Float64("easy_bonus", cfg.SRS.EasyBonus),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
	)
	return &cfg, nil
}

// bindFlag only binds flags the user actually set, so that an empty flag
// default never shadows the config file.
func bindFlag(v *viper.Viper, fs *pflag.FlagSet, key, name string) {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	v.BindPFlag(key, f)
}

// --- デフォルト値の設定 ---
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		slog.Info("Server port not set, using default", slog.String("port", DefaultServerPort))
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDBDriver
	}
	if cfg.Database.URL == "" {
		if cfg.Database.Driver == DriverSQLite {
			cfg.Database.URL = DefaultSQLiteDSN
			slog.Info("Database URL not set, using in-memory SQLite")
		} else {
			slog.Warn("Database URL is not set in config.")
		}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	if cfg.App.ReviewLimit <= 0 || cfg.App.ReviewLimit > MaxReviewLimit {
		slog.Info("App review limit not set or out of range, using default", slog.Int("review_limit", MaxReviewLimit))
		cfg.App.ReviewLimit = MaxReviewLimit
	}
	if cfg.App.VocabLimitMax <= 0 {
		cfg.App.VocabLimitMax = DefaultVocabLimitMax
	}
	if cfg.App.VocabLimitDefault <= 0 {
		cfg.App.VocabLimitDefault = DefaultVocabLimit
	}
	if cfg.App.VocabLimitDefault > cfg.App.VocabLimitMax {
		cfg.App.VocabLimitDefault = cfg.App.VocabLimitMax
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
		cfg.App.TimezoneOffsetHours = DefaultTimezoneOffsetHours
	}

	if cfg.SRS.InitialEase < 1.3 {
		cfg.SRS.InitialEase = DefaultInitialEase
	}
	if cfg.SRS.EasyBonus == 0 {
		cfg.SRS.EasyBonus = DefaultEasyBonus
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = DefaultBundleCacheTTL
	}

	cfg.Mailer.Type = strings.ToLower(strings.TrimSpace(cfg.Mailer.Type))
	if cfg.Mailer.Type == "" {
		cfg.Mailer.Type = DefaultMailerType
	}
	if cfg.Mailer.From == "" {
		cfg.Mailer.From = DefaultMailFrom
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = DefaultSMTPPort
	}
}
