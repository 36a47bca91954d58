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
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// scriptedSource replays fixed values. Float64 and Intn cycle through their
// scripts; Intn reduces its script value modulo n. Shuffle reverses.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	f := s.floats[s.fi%len(s.floats)]
	s.fi++
	return f
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func mustPlayer(t *testing.T, name string, bowling, batting float64) Player {
	t.Helper()
	p, err := NewPlayer(name, bowling, batting)
	if err != nil {
		t.Fatalf("NewPlayer(%q) failed: %v", name, err)
	}
	return p
}

func mustTeam(t *testing.T, name string, n int, bowling, batting float64) *Team {
	t.Helper()
	players := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, mustPlayer(t, name+"_"+string(rune('A'+i)), bowling, batting))
	}
	team, err := NewTeam(name, players)
	if err != nil {
		t.Fatalf("NewTeam(%q) failed: %v", name, err)
	}
	return team
}

// compareNarrative fails the test with a unified diff when actual differs
// from expected.
func compareNarrative(t *testing.T, name, expected, actual string) {
	t.Helper()
	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)
	if actual == expected {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	t.Errorf("Narrative mismatch for %s:\n%s", name, diff)
}
