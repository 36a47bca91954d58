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

import "github.com/rotisserie/eris"

var (
	// ErrInvalidPlayer is returned when a player has no name or a skill outside [0,1].
	ErrInvalidPlayer = eris.New("invalid player")
	// ErrInvalidTeam is returned for empty rosters and duplicate player names.
	ErrInvalidTeam = eris.New("invalid team")
	// ErrInvalidField is returned when a field descriptor is out of range.
	ErrInvalidField = eris.New("invalid field")
	// ErrInvalidOvers is returned when a match is configured with fewer than one over.
	ErrInvalidOvers = eris.New("invalid number of overs")
	// ErrInningsClosed is returned when a scoreboard is asked to go past its bounds.
	ErrInningsClosed = eris.New("innings closed")
	// ErrMatchAlreadyPlayed is returned by a second call to Match.Start.
	ErrMatchAlreadyPlayed = eris.New("match already played")
)
