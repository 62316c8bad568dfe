package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

func TestMain(m *testing.M) {
	os.Setenv("POMOQ_ENV", "testing")

	pterm.DisableOutput()

	os.Exit(m.Run())
}

func TestParseIntervals(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []IntervalConfig
		wantErr bool
	}{
		{
			name:  "single pair",
			input: "Work:1500",
			want:  []IntervalConfig{{Name: "Work", Duration: 1500}},
		},
		{
			name:  "ordered list with spaces",
			input: "Deep work:2700, Break:600 ,Review:300",
			want: []IntervalConfig{
				{Name: "Deep work", Duration: 2700},
				{Name: "Break", Duration: 600},
				{Name: "Review", Duration: 300},
			},
		},
		{
			name:  "zero and negative durations are accepted",
			input: "Skip:0,Broken:-5",
			want: []IntervalConfig{
				{Name: "Skip", Duration: 0},
				{Name: "Broken", Duration: -5},
			},
		},
		{
			name:    "missing separator",
			input:   "Work",
			wantErr: true,
		},
		{
			name:    "non-integer duration",
			input:   "Work:soon",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   ":60",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIntervals(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf(
						"ParseIntervals(%q): expected error, got %v",
						tc.input,
						got,
					)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseIntervals(%q): unexpected error: %v",
					tc.input,
					err,
				)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf(
					"ParseIntervals(%q) mismatch (-want +got):\n%s",
					tc.input,
					diff,
				)
			}
		})
	}
}

func TestTimerDefaults(t *testing.T) {
	viper.Reset()

	t.Cleanup(viper.Reset)

	timerDefaults()

	var got []IntervalConfig

	err := viper.UnmarshalKey(configIntervals, &got)
	if err != nil {
		t.Fatal(err)
	}

	want := []IntervalConfig{
		{Name: "Work", Duration: 1500},
		{Name: "Rest", Duration: 300},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default intervals mismatch (-want +got):\n%s", diff)
	}

	if !viper.GetBool(configNotify) {
		t.Error("expected notifications to default to on")
	}

	if !viper.GetBool(configDarkTheme) {
		t.Error("expected dark theme to default to on")
	}
}

func TestTimersConversion(t *testing.T) {
	cfg := &TimerConfig{
		Intervals: []IntervalConfig{
			{Name: "Work", Duration: 1500},
			{Name: "Rest", Duration: 300},
		},
	}

	timers := cfg.Timers()

	if len(timers) != 2 {
		t.Fatalf("expected 2 timers, got %d", len(timers))
	}

	for i, v := range cfg.Intervals {
		if timers[i].Name() != v.Name {
			t.Errorf(
				"timer %d: expected name %q, got %q",
				i,
				v.Name,
				timers[i].Name(),
			)
		}

		if timers[i].Duration() != v.Duration {
			t.Errorf(
				"timer %d: expected duration %d, got %d",
				i,
				v.Duration,
				timers[i].Duration(),
			)
		}
	}
}
