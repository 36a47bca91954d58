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
	"math"
	"strings"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		bowling float64
		batting float64
		wantErr bool
	}{
		{name: "Valid", player: "Player1_1", bowling: 0.3, batting: 0.7},
		{name: "Bounds", player: "Edge", bowling: 0, batting: 1},
		{name: "Empty name", player: "", bowling: 0.5, batting: 0.5, wantErr: true},
		{name: "Long name", player: strings.Repeat("x", maxNameLen+1), bowling: 0.5, batting: 0.5, wantErr: true},
		{name: "Negative bowling", player: "P", bowling: -0.1, batting: 0.5, wantErr: true},
		{name: "Batting above one", player: "P", bowling: 0.5, batting: 1.1, wantErr: true},
		{name: "NaN batting", player: "P", bowling: 0.5, batting: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlayer(tt.player, tt.bowling, tt.batting)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPlayer) {
					t.Fatalf("Expected ErrInvalidPlayer, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlayer failed: %v", err)
			}
			if p.Name != tt.player || p.Bowling != tt.bowling || p.Batting != tt.batting {
				t.Errorf("Unexpected player %+v", p)
			}
		})
	}
}
