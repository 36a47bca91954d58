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
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// matchNamespace scopes match IDs derived from seeds.
var matchNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cricketsim/match"))

// MatchIDForSeed returns the ID of the match played from seed, so replays
// of a seed share an ID.
func MatchIDForSeed(seed int64) uuid.UUID {
	return uuid.NewSHA1(matchNamespace, []byte(strconv.FormatInt(seed, 10)))
}

// Options configures a Match. The zero value is usable: a time-seeded
// source, no narration, no logging and a random ID.
type Options struct {
	ID     uuid.UUID
	Source Source
	Output io.Writer
	Logger *zerolog.Logger
}

// InningsSummary is the record of one completed innings.
type InningsSummary struct {
	Batting string
	Bowling string
	// Order is the batting order as it stood when the innings began.
	Order   []Player
	Bowlers []string
	AllOut  bool
	Final   Snapshot
}

// Result is the outcome of a match.
type Result struct {
	ID      uuid.UUID
	Team1   string
	Team2   string
	Innings [2]InningsSummary
	Scoring RunsHistogram
}

// Winner names the winning team. Team1 wins only with strictly more runs;
// a tie goes to Team2.
func (r Result) Winner() string {
	if r.Innings[0].Final.Runs > r.Innings[1].Final.Runs {
		return r.Team1
	}
	return r.Team2
}

// Match plays one limited-overs match between two teams. A Match is
// single-use.
type Match struct {
	ID         uuid.UUID
	Team1      *Team
	Team2      *Team
	Field      Field
	TotalOvers int

	src         Source
	umpire      *Umpire
	commentator *Commentator
	log         zerolog.Logger
	played      bool
	result      Result
}

// NewMatch returns a match between team1 and team2 of totalOvers overs a side.
func NewMatch(team1, team2 *Team, field Field, totalOvers int, opts Options) (*Match, error) {
	if team1 == nil || team2 == nil {
		return nil, eris.Wrap(ErrInvalidTeam, "match needs two teams")
	}
	if team1 == team2 {
		return nil, eris.Wrapf(ErrInvalidTeam, "%s cannot play itself", team1.Name)
	}
	if totalOvers < 1 {
		return nil, eris.Wrapf(ErrInvalidOvers, "%d", totalOvers)
	}
	src := opts.Source
	if src == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		src = NewSource(seed)
	}
	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Match{
		ID:          id,
		Team1:       team1,
		Team2:       team2,
		Field:       field,
		TotalOvers:  totalOvers,
		src:         src,
		umpire:      NewUmpire(field, src),
		commentator: NewCommentator(opts.Output),
		log:         logger.With().Str("match_id", id.String()).Logger(),
	}, nil
}

// Start plays the whole match: captains and batting orders are drawn,
// Team1 bats, then Team2, and the winner is announced. Each team's Runs and
// Wickets hold its innings total afterwards.
func (m *Match) Start() (Result, error) {
	if m.played {
		return Result{}, eris.Wrapf(ErrMatchAlreadyPlayed, "%s", m.ID)
	}
	m.played = true

	m.Team1.SelectCaptain(m.src)
	m.Team2.SelectCaptain(m.src)
	m.Team1.SetBattingOrder(m.src)
	m.Team2.SetBattingOrder(m.src)

	m.log.Info().
		Str("team1", m.Team1.Name).
		Str("team2", m.Team2.Name).
		Int("overs", m.TotalOvers).
		Msg("match started")
	m.commentator.DescribeGame(m.Team1, m.Team2, m.TotalOvers, m.Field)

	res := Result{ID: m.ID, Team1: m.Team1.Name, Team2: m.Team2.Name}
	for i, side := range [2][2]*Team{{m.Team1, m.Team2}, {m.Team2, m.Team1}} {
		inn, err := m.playInnings(side[0], side[1])
		if err != nil {
			return Result{}, eris.Wrapf(err, "innings %d", i+1)
		}
		res.Innings[i] = inn
		res.Scoring.Merge(&inn.Final.Scoring)
	}

	m.commentator.DescribeFinalResult(res)
	if err := m.commentator.Err(); err != nil {
		return Result{}, eris.Wrap(err, "narration")
	}
	m.log.Info().
		Int("team1_runs", m.Team1.Runs).
		Int("team2_runs", m.Team2.Runs).
		Str("winner", res.Winner()).
		Msg("match finished")
	m.result = res
	return res, nil
}

// Result returns the result of a played match.
func (m *Match) Result() (Result, bool) {
	return m.result, m.result.ID != uuid.Nil
}

// playInnings bats batting against bowling until the batting side is all
// out or the overs run out.
//
// Only the striker faces. The batsman next in replaces a dismissed striker;
// when nobody is left to come in after him the side is all out and the
// last striker is not out.
func (m *Match) playInnings(batting, bowling *Team) (InningsSummary, error) {
	sb := NewScoreboard(batting.Name, batting.Size(), m.TotalOvers)
	attack := bowling.NewBowlingAttack()
	summary := InningsSummary{
		Batting: batting.Name,
		Bowling: bowling.Name,
		Order:   batting.BattingOrder(),
	}
	log := m.log.With().Str("team", batting.Name).Logger()
	log.Debug().Int("batsmen", len(summary.Order)).Msg("innings started")
	m.commentator.DescribeStart(batting.Name)

	bowler := attack.ChooseBowler(m.src)
	summary.Bowlers = append(summary.Bowlers, bowler.Name)
	m.commentator.DescribeBowler(bowler, 1)

	striker, ok := batting.NextBatsman()
	nextIn, more := batting.NextBatsman()
	summary.AllOut = !ok || !more

	ball := 1
	for !summary.AllOut && !sb.OversComplete() {
		m.commentator.CurrentInfo(ball, sb.Snapshot())
		outcome := m.umpire.ResolveBall(striker, bowler)
		m.commentator.DescribeBall(striker, outcome)

		if outcome.Dismissed {
			if err := sb.RecordWicket(); err != nil {
				return InningsSummary{}, err
			}
			striker = nextIn
			nextIn, more = batting.NextBatsman()
			if more {
				m.commentator.DescribeWicket(sb.Snapshot(), &striker, striker)
			} else {
				summary.AllOut = true
				m.commentator.DescribeWicket(sb.Snapshot(), nil, striker)
			}
		} else if err := sb.AddRuns(outcome.Runs); err != nil {
			return InningsSummary{}, err
		}

		if ball >= BallsPerOver {
			if err := sb.CompleteOver(); err != nil {
				return InningsSummary{}, err
			}
			snap := sb.Snapshot()
			m.commentator.DescribeOver(snap)
			log.Debug().
				Int("over", snap.Overs).
				Int("runs", snap.Runs).
				Int("wickets", snap.Wickets).
				Str("bowler", bowler.Name).
				Msg("over complete")
			if !summary.AllOut && !sb.OversComplete() {
				bowler = attack.ChooseBowler(m.src)
				summary.Bowlers = append(summary.Bowlers, bowler.Name)
				m.commentator.DescribeBowler(bowler, snap.Overs+1)
			}
			ball = 0
		}
		ball++
	}

	summary.Final = sb.Snapshot()
	batting.Runs = summary.Final.Runs
	batting.Wickets = summary.Final.Wickets
	m.commentator.DescribeEnd(summary.Final)
	log.Debug().
		Int("runs", summary.Final.Runs).
		Int("wickets", summary.Final.Wickets).
		Int("overs", summary.Final.Overs).
		Bool("all_out", summary.AllOut).
		Msg("innings complete")
	return summary, nil
}
