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
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/rotisserie/eris"
)

// Source is the random number generator threaded through the simulation.
// Every draw a match makes goes through a single Source, so a seeded Source
// replays a whole match. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed reads a high-entropy seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, eris.Wrap(err, "read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// uniform returns a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
