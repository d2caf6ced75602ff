// Package config loads teamcover settings from an optional YAML file.
//
// Precedence: Default() < file < command-line flags (applied by the caller).
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/teams"
)

// DefaultPrefer is the employee the reference problem tries to invite.
const DefaultPrefer = 1009

// Config defines the tunables of a teamcover run.
type Config struct {
	// Maximum number of distinct employees.
	MaxVertices int `yaml:"max_vertices"`

	// Maximum number of teams the input may announce.
	MaxTeams int `yaml:"max_teams"`

	// Employee ids must satisfy 0 < id < IDBound.
	IDBound int `yaml:"id_bound"`

	// Employee to include in the cover when some minimum cover allows it.
	// Zero disables the preference; an id that never occurs in the input,
	// including one at or above IDBound, has no effect.
	Prefer int `yaml:"prefer"`

	// Check the cover against every team before printing it.
	Verify bool `yaml:"verify"`

	// One of logrus' level names ("debug", "info", "warn", ...).
	LogLevel string `yaml:"log_level"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		MaxVertices: bipartite.DefaultMaxVertices,
		MaxTeams:    teams.DefaultMaxTeams,
		IDBound:     bipartite.DefaultIDBound,
		Prefer:      DefaultPrefer,
		Verify:      false,
		LogLevel:    "info",
	}
}

// Load reads path over Default(). Keys absent from the file keep their
// default values. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error

	if c.MaxVertices <= 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max_vertices, must be > 0"))
	}
	if c.MaxTeams <= 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max_teams, must be > 0"))
	}
	if c.IDBound <= 1 {
		err = multierror.Append(err, fmt.Errorf("invalid value for id_bound, must be > 1"))
	}
	if c.Prefer < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for prefer, must be >= 0"))
	}
	if _, lerr := logrus.ParseLevel(c.LogLevel); lerr != nil {
		err = multierror.Append(err, fmt.Errorf("invalid value for log_level: %w", lerr))
	}

	return err
}

// GraphOptions converts the bounds into bipartite options.
func (c *Config) GraphOptions() []bipartite.Option {
	return []bipartite.Option{
		bipartite.WithMaxVertices(c.MaxVertices),
		bipartite.WithIDBound(c.IDBound),
	}
}

// ParseOptions converts the input limits into teams options.
func (c *Config) ParseOptions() []teams.Option {
	return []teams.Option{teams.WithMaxTeams(c.MaxTeams)}
}

// Level returns the parsed log level, falling back to Info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
