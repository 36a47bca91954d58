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
	"github.com/rotisserie/eris"
)

// Team is a named roster of players. Runs and Wickets hold the team's
// innings total once the match controller has played it.
type Team struct {
	Name    string
	Captain *Player
	Runs    int
	Wickets int

	players      []Player
	battingOrder []Player
}

// NewTeam returns a team owning a copy of players. The roster must be
// non-empty and player names must be unique.
func NewTeam(name string, players []Player) (*Team, error) {
	if err := validateName(name, "team name"); err != nil {
		return nil, eris.Wrapf(ErrInvalidTeam, "%v", err)
	}
	if len(players) == 0 {
		return nil, eris.Wrapf(ErrInvalidTeam, "%s has no players", name)
	}
	t := &Team{
		Name:    name,
		players: make([]Player, 0, len(players)),
	}
	for _, p := range players {
		if err := t.AddPlayer(p); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddPlayer appends a player to the roster.
func (t *Team) AddPlayer(p Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := t.Player(p.Name); ok {
		return eris.Wrapf(ErrInvalidTeam, "%s: duplicate player %s", t.Name, p.Name)
	}
	t.players = append(t.players, p)
	return nil
}

// Player returns the roster entry named name.
func (t *Team) Player(name string) (Player, bool) {
	for _, p := range t.players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// Players returns a copy of the roster in insertion order.
func (t *Team) Players() []Player {
	return append([]Player(nil), t.players...)
}

// Size is the number of players on the roster.
func (t *Team) Size() int {
	return len(t.players)
}

// SelectCaptain picks the captain uniformly from the roster.
func (t *Team) SelectCaptain(src Source) Player {
	c := t.players[src.Intn(len(t.players))]
	t.Captain = &c
	return c
}

// SetBattingOrder replaces the batting order with a shuffle of the whole roster.
func (t *Team) SetBattingOrder(src Source) {
	order := t.Players()
	src.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	t.battingOrder = order
}

// BattingOrder returns the batsmen still waiting to come in.
func (t *Team) BattingOrder() []Player {
	return append([]Player(nil), t.battingOrder...)
}

// NextBatsman pops the head of the batting order. It reports false once the
// order is exhausted.
func (t *Team) NextBatsman() (Player, bool) {
	if len(t.battingOrder) == 0 {
		return Player{}, false
	}
	p := t.battingOrder[0]
	t.battingOrder = t.battingOrder[1:]
	return p, true
}

// NewBowlingAttack starts a fresh record of who has bowled for this team.
func (t *Team) NewBowlingAttack() *BowlingAttack {
	return &BowlingAttack{
		team: t,
		used: make(map[string]bool, len(t.players)),
	}
}

// BowlingAttack tracks the bowlers a team has used during one innings.
//
// Bowlers are drawn uniformly from those who have not bowled yet. Once
// every player has bowled the record starts a new cycle that excludes only
// the previous bowler, so no player bowls two overs in a row. A one-player
// team has no alternative and repeats its only bowler.
type BowlingAttack struct {
	team *Team
	used map[string]bool
	last *Player
}

// ChooseBowler returns the bowler for the next over.
func (a *BowlingAttack) ChooseBowler(src Source) Player {
	candidates := a.available()
	if len(candidates) == 0 {
		clear(a.used)
		if a.last != nil {
			a.used[a.last.Name] = true
		}
		candidates = a.available()
	}
	if len(candidates) == 0 {
		candidates = a.team.Players()
	}
	b := candidates[src.Intn(len(candidates))]
	a.used[b.Name] = true
	a.last = &b
	return b
}

// Used reports whether name has bowled in the current cycle.
func (a *BowlingAttack) Used(name string) bool {
	return a.used[name]
}

func (a *BowlingAttack) available() []Player {
	out := make([]Player, 0, len(a.team.players))
	for _, p := range a.team.players {
		if !a.used[p.Name] {
			out = append(out, p)
		}
	}
	return out
}
