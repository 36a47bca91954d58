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

// RunBuckets is the number of distinct run values a ball can produce.
const RunBuckets = MaxRunsPerBall + 1

// RunsHistogram counts scoring balls by the number of runs they produced.
// Dismissals are not counted.
type RunsHistogram struct {
	Buckets [RunBuckets]int
	Count   int
	Sum     int
}

func (h *RunsHistogram) Add(runs int) {
	idx := runs
	if idx < 0 {
		idx = 0
	}
	if idx >= RunBuckets {
		idx = RunBuckets - 1
	}
	h.Buckets[idx]++
	h.Count++
	h.Sum += runs
}

func (h *RunsHistogram) Merge(other *RunsHistogram) {
	if other == nil {
		return
	}
	for i := 0; i < RunBuckets; i++ {
		h.Buckets[i] += other.Buckets[i]
	}
	h.Count += other.Count
	h.Sum += other.Sum
}

// Boundaries is the number of balls that scored four or six.
func (h *RunsHistogram) Boundaries() int {
	return h.Buckets[4] + h.Buckets[6]
}

// Snapshot is a read-only copy of a scoreboard.
type Snapshot struct {
	Team     string
	Runs     int
	Wickets  int
	Overs    int
	Balls    int
	MaxOvers int
	Scoring  RunsHistogram
}

// Scoreboard is the state of one innings. It is owned by the match
// controller and refuses updates past its bounds: at most maxWickets
// dismissals and maxOvers completed overs.
type Scoreboard struct {
	team       string
	maxOvers   int
	maxWickets int

	runs    int
	wickets int
	overs   int
	balls   int
	scoring RunsHistogram
}

// NewScoreboard returns an empty scoreboard for an innings of team, which
// has teamSize players and bats for at most maxOvers overs.
func NewScoreboard(team string, teamSize, maxOvers int) *Scoreboard {
	return &Scoreboard{
		team:       team,
		maxOvers:   maxOvers,
		maxWickets: teamSize - 1,
	}
}

// AddRuns records a ball that was not a dismissal.
func (s *Scoreboard) AddRuns(runs int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if runs < 0 || runs > MaxRunsPerBall {
		return eris.Errorf("runs %d outside [0,%d]", runs, MaxRunsPerBall)
	}
	s.runs += runs
	s.balls++
	s.scoring.Add(runs)
	return nil
}

// RecordWicket records a ball that dismissed the batsman.
func (s *Scoreboard) RecordWicket() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.wickets >= s.maxWickets {
		return eris.Wrapf(ErrInningsClosed, "%s already lost %d wickets", s.team, s.wickets)
	}
	s.wickets++
	s.balls++
	return nil
}

// CompleteOver closes the current over.
func (s *Scoreboard) CompleteOver() error {
	if s.overs >= s.maxOvers {
		return eris.Wrapf(ErrInningsClosed, "%s already completed %d overs", s.team, s.overs)
	}
	s.overs++
	return nil
}

// OversComplete reports whether the innings has used all its overs.
func (s *Scoreboard) OversComplete() bool {
	return s.overs >= s.maxOvers
}

func (s *Scoreboard) checkOpen() error {
	if s.OversComplete() {
		return eris.Wrapf(ErrInningsClosed, "%s has no overs left", s.team)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Scoreboard) Snapshot() Snapshot {
	return Snapshot{
		Team:     s.team,
		Runs:     s.runs,
		Wickets:  s.wickets,
		Overs:    s.overs,
		Balls:    s.balls,
		MaxOvers: s.maxOvers,
		Scoring:  s.scoring,
	}
}
