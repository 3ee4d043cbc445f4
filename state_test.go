// SPDX-License-Identifier: MIT

package auris

import "testing"

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{Initial, "initial"},
		{Playing, "playing"},
		{Paused, "paused"},
		{Stopped, "stopped"},
		{State(42), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			if got := tc.state.String(); got != tc.want {
				t.Fatalf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
			}
		})
	}
}
