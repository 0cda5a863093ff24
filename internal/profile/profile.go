// Package profile reads named connection settings from a YAML file, eg:
//
//	origin: https://admin.example.org:8443
//	username: test
//	apiKey: test
package profile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/zhulik/ccpadmin/internal/config"
	"github.com/zhulik/ccpadmin/internal/core"
)

var validate = validator.New() //nolint:gochecknoglobals

type Profile struct {
	Origin   string `validate:"omitempty,url"                                yaml:"origin"`
	Username string `yaml:"username"`
	APIKey   string `validate:"required_with=Username"                       yaml:"apiKey"`
	Auth     *bool  `yaml:"auth"`
	Backend  string `validate:"omitempty,url"                                yaml:"backend"`
	LogLevel string `validate:"omitempty,oneof=error warn info debug trace" yaml:"logLevel"`
}

func ParseFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	profile, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	return profile, nil
}

func Parse(data []byte) (*Profile, error) {
	profile := Profile{}

	err := yaml.Unmarshal(data, &profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidProfile, err)
	}

	err = validate.Struct(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidProfile, err)
	}

	return &profile, nil
}

// Apply overrides the fields of cfg the profile sets.
func (p *Profile) Apply(cfg *config.Config) {
	if p.Origin != "" {
		cfg.OriginURL = p.Origin
	}

	if p.Username != "" {
		cfg.User = p.Username
		cfg.Key = p.APIKey
	}

	if p.Auth != nil {
		cfg.Auth = *p.Auth
	}

	if p.Backend != "" {
		cfg.APIURL = p.Backend
	}

	if p.LogLevel != "" {
		cfg.Loglevel = p.LogLevel
	}
}
