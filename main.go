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
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ttbt-io/cricketsim/cricket"
)

// main plays one match and narrates it on stdout.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if _, err := run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("Simulation failed")
	}
}

// run plays the fixed simulation described by cfg, writing narration to out.
func run(cfg Config, out io.Writer, logger zerolog.Logger) (cricket.Result, error) {
	if cfg.Seed == 0 {
		seed, err := cricket.NewSeed()
		if err != nil {
			return cricket.Result{}, err
		}
		cfg.Seed = seed
	}
	logger.Info().Int64("seed", cfg.Seed).Msg("Seeded simulation")

	src := cricket.NewSource(cfg.Seed)
	team1, team2, err := cricket.NewFixture(src, cfg.Players)
	if err != nil {
		return cricket.Result{}, eris.Wrap(err, "build teams")
	}

	match, err := cricket.NewMatch(team1, team2, cricket.DefaultField(), cfg.Overs, cricket.Options{
		ID:     cricket.MatchIDForSeed(cfg.Seed),
		Source: src,
		Output: out,
		Logger: &logger,
	})
	if err != nil {
		return cricket.Result{}, eris.Wrap(err, "new match")
	}
	return match.Start()
}
