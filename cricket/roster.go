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
	"fmt"
	"math"
)

// SharedSkill draws the single skill value every generated player uses,
// rounded to one decimal place.
func SharedSkill(src Source) float64 {
	return math.Round(src.Float64()*10) / 10
}

// UniformRoster returns n players named "<prefix>_1" to "<prefix>_n", all
// with skill as both their batting and bowling skill.
func UniformRoster(prefix string, n int, skill float64) ([]Player, error) {
	players := make([]Player, 0, n)
	for i := 1; i <= n; i++ {
		p, err := NewPlayer(fmt.Sprintf("%s_%d", prefix, i), skill, skill)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// NewFixture builds the two teams of the fixed simulation: "Country1" and
// "Country2", teamSize players each, every player sharing one skill drawn
// from src.
func NewFixture(src Source, teamSize int) (*Team, *Team, error) {
	skill := SharedSkill(src)
	var teams [2]*Team
	for i := range teams {
		players, err := UniformRoster(fmt.Sprintf("Player%d", i+1), teamSize, skill)
		if err != nil {
			return nil, nil, err
		}
		t, err := NewTeam(fmt.Sprintf("Country%d", i+1), players)
		if err != nil {
			return nil, nil, err
		}
		teams[i] = t
	}
	return teams[0], teams[1], nil
}
