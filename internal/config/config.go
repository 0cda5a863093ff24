package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/zhulik/ccpadmin/internal/core"
)

var validate = validator.New() //nolint:gochecknoglobals

type Config struct {
	OriginURL string `env:"CCP_ADMIN_ORIGIN" envDefault:"http://127.0.0.1:8080" validate:"required,url"`

	Auth bool   `env:"CCP_ADMIN_AUTH"     envDefault:"true"`
	User string `env:"CCP_ADMIN_USERNAME" envDefault:"test"  validate:"required_if=Auth true"`
	Key  string `env:"CCP_ADMIN_API_KEY"  envDefault:"test"  validate:"required_if=Auth true"`

	APIURL   string `env:"CCP_ADMIN_API_URL" envDefault:"http://127.0.0.1:63030" validate:"required,url"`
	HttpPort int    `env:"HTTP_PORT"         envDefault:"8080"                   validate:"min=1,max=65535"` //nolint:stylecheck
	Assets   string `env:"CCP_ADMIN_ASSETS"`

	Loglevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=panic fatal error warn warning info debug trace"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		OriginURL: core.DefaultOrigin,
		Auth:      true,
		User:      core.DefaultUsername,
		Key:       core.DefaultAPIKey,
		APIURL:    core.DefaultBackendURL,
		HttpPort:  core.DefaultHTTPPort,
		Loglevel:  "info",
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}

	return cfg, Validate(cfg)
}

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}

	return nil
}

func (c Config) Origin() string {
	return c.OriginURL
}

func (c Config) AuthEnabled() bool {
	return c.Auth
}

func (c Config) Username() string {
	return c.User
}

func (c Config) APIKey() string {
	return c.Key
}

func (c Config) BackendURL() string {
	return c.APIURL
}

func (c Config) HTTPPort() int {
	return c.HttpPort
}

func (c Config) AssetsDir() string {
	return c.Assets
}

func (c Config) LogLevel() string {
	return c.Loglevel
}
