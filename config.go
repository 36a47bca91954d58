// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"

	"github.com/ttbt-io/cricketsim/cricket"
)

// Config holds the simulation settings. Environment variables are read
// first and command line flags override them.
type Config struct {
	// Seed drives every random draw. Zero means pick one at random.
	Seed    int64 `env:"CRICKET_SEED"`
	Overs   int   `env:"CRICKET_OVERS"   envDefault:"50"`
	Players int   `env:"CRICKET_PLAYERS" envDefault:"12"`
	Debug   bool  `env:"CRICKET_DEBUG"`
}

// ParseConfig parses the environment and then args into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "parse env")
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 picks one")
	fs.IntVar(&cfg.Overs, "overs", cfg.Overs, "overs per innings")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "players per team")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no match can be played with.
func (c Config) Validate() error {
	if c.Overs < 1 {
		return eris.Wrapf(cricket.ErrInvalidOvers, "overs must be at least 1, got %d", c.Overs)
	}
	if c.Players < 1 {
		return eris.Wrapf(cricket.ErrInvalidTeam, "players must be at least 1, got %d", c.Players)
	}
	return nil
}
