package corral

import "testing"

func TestInputHeadingPriority(t *testing.T) {
	cases := []struct {
		name string
		in   InputFrame
		want Vec2
	}{
		{"none", InputFrame{}, VecZero},
		{"left", InputFrame{Left: true}, VecLeft},
		{"right", InputFrame{Right: true}, VecRight},
		{"up", InputFrame{Up: true}, VecUp},
		{"down", InputFrame{Down: true}, VecDown},
		{"left beats right", InputFrame{Left: true, Right: true}, VecLeft},
		{"left beats down", InputFrame{Left: true, Down: true}, VecLeft},
		{"right beats up", InputFrame{Right: true, Up: true}, VecRight},
		{"up beats down", InputFrame{Up: true, Down: true}, VecUp},
		{"all held", InputFrame{Left: true, Right: true, Up: true, Down: true}, VecLeft},
	}
	for _, tc := range cases {
		if got := tc.in.Heading(); got != tc.want {
			t.Errorf("%s: Heading() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestInputSpaceDoesNotAffectHeading(t *testing.T) {
	in := InputFrame{Space: true}
	if got := in.Heading(); got != VecZero {
		t.Errorf("Heading() = %v, want zero", got)
	}
}
