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

// Outcome model
const (
	// BaseDismissalProbability is the chance of a dismissal before skills are applied.
	BaseDismissalProbability = 0.5
	// JitterMin and JitterMax bound the per-ball random factor.
	JitterMin = 0.8
	JitterMax = 1.2
	// MaxRunsPerBall is the highest number of runs a single ball can yield.
	MaxRunsPerBall = 6
)

// Match structure
const (
	BallsPerOver = 6
	DefaultOvers = 50
	// DefaultTeamSize is the roster size used by the fixed simulation.
	DefaultTeamSize = 12
)

// Field sizes
const (
	FieldSmall  = "Small"
	FieldMedium = "Medium"
	FieldLarge  = "Large"
)

// Ball outcomes, as announced by the umpire.
const (
	OutcomeOut    = "OUT"
	OutcomeNotOut = "NOT OUT"
)
