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

// BallOutcome is the umpire's ruling on a single ball.
type BallOutcome struct {
	Dismissed bool
	Runs      int
}

// Call is the umpire's announcement for the outcome.
func (o BallOutcome) Call() string {
	if o.Dismissed {
		return OutcomeOut
	}
	return OutcomeNotOut
}

// Umpire adjudicates balls. All of its randomness comes from src.
type Umpire struct {
	Field Field
	src   Source
}

// NewUmpire returns an umpire for field drawing from src.
func NewUmpire(field Field, src Source) *Umpire {
	return &Umpire{Field: field, src: src}
}

// DismissalProbability is the outcome formula without its random factor:
//
//	clamp((base + batting - (1 - bowling)) * jitter, 0, 1)
//
// The result is always in [0,1].
func DismissalProbability(batting, bowling, jitter float64) float64 {
	adjusted := BaseDismissalProbability + (batting - (1 - bowling))
	return clamp(adjusted*jitter, 0, 1)
}

// ProbabilityOfDismissal draws a jitter in [JitterMin, JitterMax] and
// applies DismissalProbability to the pair.
func (u *Umpire) ProbabilityOfDismissal(batsman, bowler Player) float64 {
	jitter := uniform(u.src, JitterMin, JitterMax)
	return DismissalProbability(batsman.Batting, bowler.Bowling, jitter)
}

// ResolveBall decides one ball. A dismissal scores nothing; otherwise the
// batsman scores between 0 and MaxRunsPerBall runs, uniformly.
func (u *Umpire) ResolveBall(batsman, bowler Player) BallOutcome {
	p := u.ProbabilityOfDismissal(batsman, bowler)
	if u.src.Float64() <= p {
		return BallOutcome{Dismissed: true}
	}
	return BallOutcome{Runs: u.src.Intn(MaxRunsPerBall + 1)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
