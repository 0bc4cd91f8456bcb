package layout

import "testing"

func TestToggle_DefaultIsLinear(t *testing.T) {
	var tg Toggle
	if got := tg.Mode(); got != Linear {
		t.Fatalf("Mode() = %v, want %v", got, Linear)
	}
}

func TestToggle_FlipsAndReturns(t *testing.T) {
	var tg Toggle

	tg.Toggle()
	if got := tg.Mode(); got != Grid {
		t.Fatalf("after one toggle Mode() = %v, want %v", got, Grid)
	}
	tg.Toggle()
	if got := tg.Mode(); got != Linear {
		t.Fatalf("after two toggles Mode() = %v, want %v", got, Linear)
	}
}

func TestToggle_IsInvolution(t *testing.T) {
	var tg Toggle
	for i := 0; i < 7; i++ {
		before := tg.Mode()
		tg.Toggle()
		tg.Toggle()
		if got := tg.Mode(); got != before {
			t.Fatalf("iteration %d: double toggle changed mode %v -> %v", i, before, got)
		}
		tg.Toggle()
	}
}

func TestToggle_IconShowsTargetMode(t *testing.T) {
	var tg Toggle
	if got := tg.Icon(); got != GridIcon {
		t.Fatalf("Linear Icon() = %+v, want %+v", got, GridIcon)
	}
	tg.Toggle()
	if got := tg.Icon(); got != LinearIcon {
		t.Fatalf("Grid Icon() = %+v, want %+v", got, LinearIcon)
	}
}

func TestToggle_Columns(t *testing.T) {
	cases := []struct {
		name   string
		grid   bool
		config int
		want   int
	}{
		{"linear ignores config", false, 6, 1},
		{"grid uses config", true, 6, 6},
		{"grid zero falls back", true, 0, DefaultGridColumns},
		{"grid negative falls back", true, -2, DefaultGridColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tg Toggle
			if tc.grid {
				tg.Toggle()
			}
			if got := tg.Columns(tc.config); got != tc.want {
				t.Fatalf("Columns(%d) = %d, want %d", tc.config, got, tc.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if Linear.String() != "Linear" || Grid.String() != "Grid" {
		t.Fatalf("String() = %q/%q, want Linear/Grid", Linear.String(), Grid.String())
	}
	if got := Mode(9).String(); got != "Unknown" {
		t.Fatalf("Mode(9).String() = %q, want Unknown", got)
	}
}
