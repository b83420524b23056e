// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/runoff/irv"
)

// Tie-break modes
const (
	TieBreakRandom = "random"
	TieBreakFirst  = "first"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKeySalt  string
	ElectionTitle string
	Candidates    []string
	TieBreak      string
}

// TieBreaker returns the irv tie breaker selected by TieBreak.
func (c Config) TieBreaker() irv.TieBreaker {
	if c.TieBreak == TieBreakFirst {
		return irv.FirstInPoolOrder
	}
	return irv.NewRandomTieBreaker(nil)
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates string

	fs := flag.NewFlagSet("runoff", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Election
	fs.StringVar(&cfg.ElectionTitle, "title", "", "Election title")
	fs.StringVar(&candidates, "c", "", "Comma-separated candidate names")
	fs.StringVar(&cfg.TieBreak, "tie-break", "", "Tie-break mode (random or first)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "runoff.db"
	}

	if cfg.ElectionTitle == "" {
		cfg.ElectionTitle = os.Getenv("ELECTION_TITLE")
		if cfg.ElectionTitle == "" {
			cfg.ElectionTitle = "General Election"
		}
	}

	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	if candidates == "" {
		cfg.Candidates = append([]string(nil), irv.DefaultCandidates...)
	} else {
		names, err := ParseCandidates(candidates)
		if err != nil {
			return Config{}, err
		}
		cfg.Candidates = names
	}

	if cfg.TieBreak == "" {
		cfg.TieBreak = os.Getenv("TIE_BREAK")
		if cfg.TieBreak == "" {
			cfg.TieBreak = TieBreakRandom
		}
	}
	if cfg.TieBreak != TieBreakRandom && cfg.TieBreak != TieBreakFirst {
		return Config{}, errors.New("TIE_BREAK must be random or first")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}

// ParseCandidates splits a comma-separated candidate list.
func ParseCandidates(list string) ([]string, error) {
	var names []string
	seen := map[string]bool{}
	for _, part := range strings.Split(list, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, errors.New("candidate names cannot be empty")
		}
		if seen[name] {
			return nil, errors.New("duplicate candidate name: " + name)
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}
