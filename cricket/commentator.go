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
	"io"
)

const (
	headerRule  = "-------------------------------------"
	resultRule  = "---------------------------------------------"
	startBanner = "------------- GAME STARTED ------------------"
)

// FormatGameHeader describes the fixture before the first ball.
func FormatGameHeader(team1, team2 *Team, overs int, field Field) []string {
	return []string{
		"--------- Game Information ---------",
		fmt.Sprintf("%s Vs %s", team1.Name, team2.Name),
		fmt.Sprintf("Captain 1: %s, Captain 2: %s", captainName(team1), captainName(team2)),
		fmt.Sprintf("Over: %d", overs),
		fmt.Sprintf("Field: %s", field.Size),
		headerRule,
	}
}

func captainName(t *Team) string {
	if t.Captain == nil {
		return "-"
	}
	return t.Captain.Name
}

// FormatInningsStart announces the batting side.
func FormatInningsStart(team string) []string {
	return []string{
		startBanner,
		fmt.Sprintf("Team %s is playing:", team),
	}
}

// FormatBallStatus is the status line printed before ball number ball of the current over.
func FormatBallStatus(ball int, s Snapshot) string {
	return fmt.Sprintf("Balls: %d Over: %d Run: %d  Wicket: %d", ball, s.Overs, s.Runs, s.Wickets)
}

// FormatOutcome is the umpire's call.
func FormatOutcome(o BallOutcome) string {
	return "Outcome:  " + o.Call()
}

// FormatShot describes what the batsman did with the ball.
func FormatShot(batsman Player, o BallOutcome) string {
	if o.Dismissed {
		return fmt.Sprintf("%s is OUT!", batsman.Name)
	}
	return fmt.Sprintf("%s plays the shot and scores %d run(s).", batsman.Name, o.Runs)
}

// FormatWicket is the scoreboard after a dismissal.
func FormatWicket(s Snapshot) string {
	return fmt.Sprintf("Wickets: %d, Overs: %d", s.Wickets, s.Overs)
}

// FormatNewBatsman announces the incoming batsman.
func FormatNewBatsman(p Player) string {
	return fmt.Sprintf("New player %s is playing...", p.Name)
}

// FormatAllOut closes an innings that ran out of batsmen.
func FormatAllOut(team string, notOut Player) string {
	return fmt.Sprintf("%s all out, %s not out", team, notOut.Name)
}

// FormatOverEnd summarises a completed over.
func FormatOverEnd(s Snapshot) string {
	return fmt.Sprintf("End of over %d. Total runs: %d, Wickets: %d", s.Overs, s.Runs, s.Wickets)
}

// FormatNewBowler announces who bowls the next over.
func FormatNewBowler(bowler Player, over int) string {
	return fmt.Sprintf("%s to bowl over %d", bowler.Name, over)
}

// FormatInningsEnd summarises an innings.
func FormatInningsEnd(s Snapshot) string {
	return fmt.Sprintf("End of innings. Total runs: %d, Wickets: %d", s.Runs, s.Wickets)
}

// FormatResult announces the winner.
func FormatResult(r Result) []string {
	return []string{
		" Winner ",
		fmt.Sprintf("TEAM: %s WON", r.Winner()),
		resultRule,
	}
}

// Commentator narrates a match to w. It keeps the first write error and
// drops every line after it.
type Commentator struct {
	w   io.Writer
	err error
}

// NewCommentator returns a Commentator writing to w.
func NewCommentator(w io.Writer) *Commentator {
	if w == nil {
		w = io.Discard
	}
	return &Commentator{w: w}
}

// Err returns the first write error, if any.
func (c *Commentator) Err() error {
	return c.err
}

func (c *Commentator) say(lines ...string) {
	for _, l := range lines {
		if c.err != nil {
			return
		}
		_, c.err = fmt.Fprintln(c.w, l)
	}
}

func (c *Commentator) DescribeGame(team1, team2 *Team, overs int, field Field) {
	c.say(FormatGameHeader(team1, team2, overs, field)...)
}

func (c *Commentator) DescribeStart(team string) {
	c.say(FormatInningsStart(team)...)
}

func (c *Commentator) CurrentInfo(ball int, s Snapshot) {
	c.say(FormatBallStatus(ball, s))
}

func (c *Commentator) DescribeBall(batsman Player, o BallOutcome) {
	c.say(FormatOutcome(o), FormatShot(batsman, o))
}

// DescribeWicket reports a dismissal. incoming is nil when the side is all
// out, in which case notOut is the batsman left without a partner.
func (c *Commentator) DescribeWicket(s Snapshot, incoming *Player, notOut Player) {
	c.say(FormatWicket(s))
	if incoming == nil {
		c.say(FormatAllOut(s.Team, notOut))
		return
	}
	c.say(FormatNewBatsman(*incoming))
}

func (c *Commentator) DescribeOver(s Snapshot) {
	c.say(FormatOverEnd(s))
}

func (c *Commentator) DescribeBowler(bowler Player, over int) {
	c.say(FormatNewBowler(bowler, over))
}

func (c *Commentator) DescribeEnd(s Snapshot) {
	c.say(FormatInningsEnd(s))
}

func (c *Commentator) DescribeFinalResult(r Result) {
	c.say(FormatResult(r)...)
}
