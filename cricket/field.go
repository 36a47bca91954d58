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

// Field describes the ground a match is played on. The umpire carries it
// but the dismissal formula does not read it.
type Field struct {
	Size            string
	FanRatio        float64
	PitchConditions float64
	HomeAdvantage   float64
}

// NewField returns a validated Field. Ratios must lie in [0,1].
func NewField(size string, fanRatio, pitchConditions, homeAdvantage float64) (Field, error) {
	f := Field{
		Size:            size,
		FanRatio:        fanRatio,
		PitchConditions: pitchConditions,
		HomeAdvantage:   homeAdvantage,
	}
	if err := validateName(size, "field size"); err != nil {
		return Field{}, eris.Wrapf(ErrInvalidField, "%v", err)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"fan ratio", fanRatio},
		{"pitch conditions", pitchConditions},
		{"home advantage", homeAdvantage},
	} {
		if !inUnitInterval(v.val) {
			return Field{}, eris.Wrapf(ErrInvalidField, "%s %v outside [0,1]", v.name, v.val)
		}
	}
	return f, nil
}

// DefaultField is the ground used by the fixed simulation.
func DefaultField() Field {
	return Field{
		Size:            FieldLarge,
		FanRatio:        0.5,
		PitchConditions: 0.6,
		HomeAdvantage:   0.7,
	}
}
