// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Config holds the resolved command-line configuration.
// Precedence: flags, then process environment, then the optional env file,
// then the envDefault tags.
type Config struct {
	Format   string  `env:"MATHCALC_FORMAT" envDefault:"text"`
	LogLevel string  `env:"MATHCALC_LOG_LEVEL" envDefault:"warn"`
	RelTol   float64 `env:"MATHCALC_RTOL" envDefault:"1e-6"`
	AbsTol   float64 `env:"MATHCALC_ATOL" envDefault:"1e-12"`

	// EnvFile is a dotenv file read before the environment is parsed.
	EnvFile string
	// Expect, when set, is compared against the result.
	Expect string
	// Args is the operation name followed by its operands.
	Args []string
}

// ParseConfig parses flags from args and configuration from environ
// (KEY=VALUE pairs, as returned by os.Environ).
func ParseConfig(fs *flag.FlagSet, args, environ []string) (Config, error) {
	var flags Config
	fs.StringVar(&flags.EnvFile, "env-file", "", "dotenv file with MATHCALC_* settings")
	fs.StringVar(&flags.Format, "format", "", "output format: text, json or yaml (env MATHCALC_FORMAT)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn or error (env MATHCALC_LOG_LEVEL)")
	fs.Float64Var(&flags.RelTol, "rtol", 0, "relative tolerance for -expect (env MATHCALC_RTOL)")
	fs.Float64Var(&flags.AbsTol, "atol", 0, "absolute tolerance for -expect (env MATHCALC_ATOL)")
	fs.StringVar(&flags.Expect, "expect", "", "fail unless the result equals this value")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	vars := environMap(environ)
	if flags.EnvFile != "" {
		fileVars, err := godotenv.Read(flags.EnvFile)
		if err != nil {
			return Config{}, fmt.Errorf("read env file: %w", err)
		}
		for k, v := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = flags.Format
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "rtol":
			cfg.RelTol = flags.RelTol
		case "atol":
			cfg.AbsTol = flags.AbsTol
		}
	})
	cfg.EnvFile = flags.EnvFile
	cfg.Expect = flags.Expect
	cfg.Args = fs.Args()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if math.IsNaN(c.RelTol) || math.IsInf(c.RelTol, 0) || c.RelTol < 0 {
		return errors.New("rtol must be finite and non-negative")
	}
	if math.IsNaN(c.AbsTol) || math.IsInf(c.AbsTol, 0) || c.AbsTol < 0 {
		return errors.New("atol must be finite and non-negative")
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return lvl, nil
}

// environMap splits KEY=VALUE pairs; later entries win.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}

	return m
}
