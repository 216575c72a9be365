package config

import "time"

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Model  ModelConfig  `mapstructure:"model"`
	Assets AssetsConfig `mapstructure:"assets"`
	API    APIConfig    `mapstructure:"api"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Mode            string        `mapstructure:"mode"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ModelConfig points at the serialized classifier artifact. The artifact
// is loaded once at startup; changing the file on disk requires a restart.
type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// AssetsConfig locates the HTML templates and static files. OverviewImage
// is the file served on the Project Overview page; if it is missing the
// page renders without it.
type AssetsConfig struct {
	TemplateGlob  string `mapstructure:"template_glob"`
	StaticDir     string `mapstructure:"static_dir"`
	OverviewImage string `mapstructure:"overview_image"`
}

type APIConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	RateLimit    int           `mapstructure:"rate_limit"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	CORS         CORSConfig    `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}
