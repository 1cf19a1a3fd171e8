package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Env holds process settings read from the environment.
type Env struct {
	Origin    string `env:"APP_ORIGIN"`
	Port      string `env:"PORT"       envDefault:"9010"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	NodeEnv   string `env:"NODE_ENV"   envDefault:"development"`
	SiteDir   string `env:"SITE_DIR"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// IsProd reports whether assets should be built for production.
func (e Env) IsProd() bool {
	return e.NodeEnv == "production"
}
