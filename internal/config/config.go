package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	BLS      BLSConfig      `yaml:"bls" mapstructure:"bls"`
	JSearch  JSearchConfig  `yaml:"jsearch" mapstructure:"jsearch"`
	USAJobs  USAJobsConfig  `yaml:"usajobs" mapstructure:"usajobs"`
	ONET     ONETConfig     `yaml:"onet" mapstructure:"onet"`
	Geocode  GeocodeConfig  `yaml:"geocode" mapstructure:"geocode"`
	Research ResearchConfig `yaml:"research" mapstructure:"research"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the geocode cache backend. An empty driver disables
// the persistent cache.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath  string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// BLSConfig holds BLS API settings. The key is optional but raises quotas.
type BLSConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	StartYear string `yaml:"start_year" mapstructure:"start_year"`
	EndYear   string `yaml:"end_year" mapstructure:"end_year"`
}

// JSearchConfig holds JSearch (RapidAPI) settings. An empty key disables the
// source.
type JSearchConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// USAJobsConfig holds USAJobs API settings. Both values are required by the
// API; an empty key disables the source.
type USAJobsConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
}

// ONETConfig holds O*NET Web Services credentials. Empty credentials disable
// the external matcher tier.
type ONETConfig struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
}

// GeocodeConfig configures the Census geocoding fallback.
type GeocodeConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// ResearchConfig configures the pipeline.
type ResearchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	PolicyFile  string `yaml:"policy_file" mapstructure:"policy_file"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COMPSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "")
	v.SetDefault("store.sqlite_path", "compscope.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("bls.base_url", "https://api.bls.gov/publicAPI/v2")
	v.SetDefault("bls.start_year", "2023")
	v.SetDefault("bls.end_year", "2024")
	v.SetDefault("jsearch.base_url", "https://jsearch.p.rapidapi.com")
	v.SetDefault("usajobs.base_url", "https://data.usajobs.gov")
	v.SetDefault("onet.base_url", "https://services.onetcenter.org/ws")
	v.SetDefault("geocode.enabled", true)
	v.SetDefault("geocode.base_url", "https://geocoding.geo.census.gov")
	v.SetDefault("research.timeout_secs", 15)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
