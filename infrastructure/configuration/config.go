package configuration

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"ytdl-simpel/infrastructure/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultBackendURL     = "https://indraa.naell.my.id:2000"
	DefaultRequestTimeout = 60 * time.Second
	DefaultPort           = 10001
)

type Config struct {
	App       App       `mapstructure:"app"`
	Backend   Backend   `mapstructure:"backend"`
	Quality   Quality   `mapstructure:"quality"`
	CORS      CORS      `mapstructure:"cors"`
	RateLimit RateLimit `mapstructure:"rateLimit"`
	Logger    Logger    `mapstructure:"logger"`
}

type App struct {
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode string `mapstructure:"mode" validate:"omitempty,oneof=debug release test"`
}

// Backend describes where the extraction service lives
type Backend struct {
	BaseURL   string        `mapstructure:"baseUrl" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Endpoints Endpoints     `mapstructure:"endpoints"`
}

type Endpoints struct {
	Audio  string `mapstructure:"audio" validate:"required,startswith=/"`
	Video  string `mapstructure:"video" validate:"required,startswith=/"`
	Search string `mapstructure:"search" validate:"required,startswith=/"`
}

// Quality holds the ordered (low to high) quality lists offered per format
type Quality struct {
	DefaultAudio string   `mapstructure:"defaultAudio" validate:"required"`
	DefaultVideo string   `mapstructure:"defaultVideo" validate:"required"`
	Audio        []string `mapstructure:"audio" validate:"required,min=1,unique,dive,required"`
	Video        []string `mapstructure:"video" validate:"required,min=1,unique,dive,required"`
}

type CORS struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type RateLimit struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration. Every call returns fresh slices.
func Default() Config {
	return Config{
		App: App{Port: DefaultPort, Mode: "release"},
		Backend: Backend{
			BaseURL: DefaultBackendURL,
			Timeout: DefaultRequestTimeout,
			Endpoints: Endpoints{
				Audio:  "/api/ytmp3",
				Video:  "/api/ytmp4",
				Search: "/api/search",
			},
		},
		Quality: Quality{
			DefaultAudio: "320 kbps",
			DefaultVideo: "720p",
			Audio: []string{
				"8 kbps", "16 kbps", "24 kbps", "32 kbps", "40 kbps", "48 kbps",
				"56 kbps", "64 kbps", "80 kbps", "96 kbps", "112 kbps", "128 kbps",
				"160 kbps", "192 kbps", "224 kbps", "256 kbps", "320 kbps",
			},
			Video: []string{"144p", "240p", "360p", "480p", "720p", "1080p", "1440p", "2160p", "4320p"},
		},
		CORS:      CORS{AllowOrigins: []string{"*"}},
		RateLimit: RateLimit{Enabled: true, RequestsPerSecond: 20, Burst: 40},
		Logger:    Logger{Level: "info", Format: "json"},
	}
}

// LoadConfig resolves the configuration once at startup: built-in defaults,
// then an optional ytdl[-ENV].json file, then environment variables.
// A missing BACKEND_URL is not an error; the built-in address is used.
func LoadConfig() (Config, error) {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	setDefaults(v, Default())
	if err := bindEnv(v); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", name, err)
		}
		logger.GetLogger().WithField("config", name).Debug("Config file not found, using defaults and environment")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(c.Backend.BaseURL), "/")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"config":     name,
		"backendUrl": c.Backend.BaseURL,
		"timeout":    c.Backend.Timeout.String(),
		"port":       c.App.Port,
	}).Info("Config set up successfully")
	return c, nil
}

// Validate checks field rules and that each default quality is one of the allowed ones.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if !slices.Contains(c.Quality.Audio, c.Quality.DefaultAudio) {
		return fmt.Errorf("validate config: default audio quality %q is not one of %v", c.Quality.DefaultAudio, c.Quality.Audio)
	}
	if !slices.Contains(c.Quality.Video, c.Quality.DefaultVideo) {
		return fmt.Errorf("validate config: default video quality %q is not one of %v", c.Quality.DefaultVideo, c.Quality.Video)
	}
	return nil
}

func getConfig() string {
	name := "ytdl"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("app.port", d.App.Port)
	v.SetDefault("app.mode", d.App.Mode)
	v.SetDefault("backend.baseUrl", d.Backend.BaseURL)
	v.SetDefault("backend.timeout", d.Backend.Timeout)
	v.SetDefault("backend.endpoints.audio", d.Backend.Endpoints.Audio)
	v.SetDefault("backend.endpoints.video", d.Backend.Endpoints.Video)
	v.SetDefault("backend.endpoints.search", d.Backend.Endpoints.Search)
	v.SetDefault("quality.defaultAudio", d.Quality.DefaultAudio)
	v.SetDefault("quality.defaultVideo", d.Quality.DefaultVideo)
	v.SetDefault("quality.audio", d.Quality.Audio)
	v.SetDefault("quality.video", d.Quality.Video)
	v.SetDefault("cors.allowOrigins", d.CORS.AllowOrigins)
	v.SetDefault("rateLimit.enabled", d.RateLimit.Enabled)
	v.SetDefault("rateLimit.requestsPerSecond", d.RateLimit.RequestsPerSecond)
	v.SetDefault("rateLimit.burst", d.RateLimit.Burst)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
}

// bindEnv maps the documented variable names; everything else is reachable
// through AutomaticEnv (e.g. BACKEND_TIMEOUT=30s).
func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"backend.baseUrl", "BACKEND_URL", "NEXT_PUBLIC_BACKEND_URL"},
		{"app.port", "APP_PORT", "PORT"},
		{"app.mode", "GIN_MODE"},
		{"cors.allowOrigins", "CORS_ALLOW_ORIGINS"},
		{"rateLimit.enabled", "RATE_LIMIT_ENABLED"},
		{"rateLimit.requestsPerSecond", "RATE_LIMIT_RPS"},
		{"rateLimit.burst", "RATE_LIMIT_BURST"},
		{"logger.level", "LOG_LEVEL"},
		{"logger.format", "LOG_FORMAT"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return err
		}
	}
	return nil
}
