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
	"errors"
	"testing"
)

func TestSharedSkill(t *testing.T) {
	for _, tt := range []struct {
		draw, want float64
	}{
		{0, 0},
		{0.04, 0},
		{0.26, 0.3},
		{0.999, 1},
	} {
		if got := SharedSkill(&scriptedSource{floats: []float64{tt.draw}}); got != tt.want {
			t.Errorf("SharedSkill(%v) = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestNewFixture(t *testing.T) {
	team1, team2, err := NewFixture(&scriptedSource{floats: []float64{0.34}}, DefaultTeamSize)
	if err != nil {
		t.Fatalf("NewFixture failed: %v", err)
	}
	if team1.Name != "Country1" || team2.Name != "Country2" {
		t.Errorf("Unexpected team names %s, %s", team1.Name, team2.Name)
	}
	for _, team := range []*Team{team1, team2} {
		if team.Size() != DefaultTeamSize {
			t.Errorf("%s: expected %d players, got %d", team.Name, DefaultTeamSize, team.Size())
		}
		for _, p := range team.Players() {
			if p.Batting != 0.3 || p.Bowling != 0.3 {
				t.Errorf("%s: expected shared skill 0.3, got %+v", team.Name, p)
			}
		}
	}
	if _, ok := team2.Player("Player2_12"); !ok {
		t.Error("Expected Player2_12 on Country2")
	}

	if _, _, err := NewFixture(&scriptedSource{}, 0); !errors.Is(err, ErrInvalidTeam) {
		t.Errorf("Expected ErrInvalidTeam for empty fixture, got %v", err)
	}
}

func TestNewField(t *testing.T) {
	if _, err := NewField(FieldLarge, 0.5, 0.6, 0.7); err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	if _, err := NewField("", 0.5, 0.6, 0.7); !errors.Is(err, ErrInvalidField) {
		t.Errorf("Expected ErrInvalidField for empty size, got %v", err)
	}
	if _, err := NewField(FieldSmall, 1.5, 0.6, 0.7); !errors.Is(err, ErrInvalidField) {
		t.Errorf("Expected ErrInvalidField for fan ratio, got %v", err)
	}
}

func TestMatchIDForSeed(t *testing.T) {
	if MatchIDForSeed(1) != MatchIDForSeed(1) {
		t.Error("Expected stable ID for the same seed")
	}
	if MatchIDForSeed(1) == MatchIDForSeed(2) {
		t.Error("Expected different IDs for different seeds")
	}
}

func TestNewSource(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Sources with the same seed diverged")
		}
	}
	if _, err := NewSeed(); err != nil {
		t.Errorf("NewSeed failed: %v", err)
	}
}
