package timer_test

import (
	"testing"

	"github.com/pomoq/pomoq/timer"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{65, "01:05"},
		{125, "02:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{-42, "00:00"},
	}

	for _, tc := range cases {
		got := timer.FormatSeconds(tc.seconds)
		if got != tc.want {
			t.Errorf(
				"FormatSeconds(%d) = %q, want %q",
				tc.seconds,
				got,
				tc.want,
			)
		}
	}
}

func TestRemainderOf(t *testing.T) {
	r := timer.RemainderOf(125)

	if r.T != 125 || r.M != 2 || r.S != 5 {
		t.Errorf("RemainderOf(125) = %+v, want T=125 M=2 S=5", r)
	}

	r = timer.RemainderOf(-10)
	if r.T != 0 || r.M != 0 || r.S != 0 {
		t.Errorf("RemainderOf(-10) = %+v, want all zero", r)
	}
}

func TestTimerAccessors(t *testing.T) {
	tm := timer.New("Deep work", 2700)

	if tm.Name() != "Deep work" {
		t.Errorf("unexpected name: %s", tm.Name())
	}

	if tm.Duration() != 2700 {
		t.Errorf("unexpected duration: %d", tm.Duration())
	}
}
