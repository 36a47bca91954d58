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

package cricket

import (
	"math"

	"github.com/rotisserie/eris"
)

// maxNameLen caps player and team names so narration lines stay readable.
const maxNameLen = 64

// Player is a member of a team. Skills are in [0,1].
type Player struct {
	Name    string
	Bowling float64
	Batting float64
}

// NewPlayer returns a validated Player.
func NewPlayer(name string, bowling, batting float64) (Player, error) {
	p := Player{Name: name, Bowling: bowling, Batting: batting}
	if err := p.Validate(); err != nil {
		return Player{}, err
	}
	return p, nil
}

// Validate checks the name and that both skills lie in [0,1].
func (p Player) Validate() error {
	if err := validateName(p.Name, "player name"); err != nil {
		return eris.Wrapf(ErrInvalidPlayer, "%v", err)
	}
	if !inUnitInterval(p.Bowling) {
		return eris.Wrapf(ErrInvalidPlayer, "%s: bowling skill %v outside [0,1]", p.Name, p.Bowling)
	}
	if !inUnitInterval(p.Batting) {
		return eris.Wrapf(ErrInvalidPlayer, "%s: batting skill %v outside [0,1]", p.Name, p.Batting)
	}
	return nil
}

func (p Player) String() string {
	return p.Name
}

func inUnitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func validateName(s, what string) error {
	if s == "" {
		return eris.Errorf("%s is empty", what)
	}
	if len(s) > maxNameLen {
		return eris.Errorf("%s too long (max %d chars)", what, maxNameLen)
	}
	return nil
}
