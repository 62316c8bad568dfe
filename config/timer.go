package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/pomoq/pomoq/timer"
)

var timerCfg = &TimerConfig{}

var once sync.Once

var (
	errInitFailed = errors.New(
		"unable to initialise pomoq settings from the configuration file",
	)

	errExpectedInteger = errors.New(
		"expected an integer greater than zero",
	)

	errInvalidInterval = errors.New(
		"invalid interval: expected a comma-separated list of Name:seconds pairs",
	)
)

const (
	configIntervals   = "intervals"
	configNotify      = "notify"
	configIntervalCmd = "interval_cmd"
	configDarkTheme   = "dark_theme"
)

const (
	defaultWorkMinutes = 25
	defaultRestMinutes = 5

	secondsInAMinute = 60
)

const (
	workIntervalName = "Work"
	restIntervalName = "Rest"
)

// IntervalConfig is one entry of the ordered countdown sequence.
type IntervalConfig struct {
	Name     string `mapstructure:"name"     json:"name"`
	Duration int    `mapstructure:"duration" json:"duration"` // seconds
}

// TimerConfig represents the program configuration derived from the
// config file and command-line arguments.
type TimerConfig struct {
	Stderr       io.Writer        `json:"-"`
	Stdout       io.Writer        `json:"-"`
	Stdin        io.Reader        `json:"-"`
	IntervalCmd  string           `json:"interval_cmd"`
	PathToConfig string           `json:"path_to_config"`
	Intervals    []IntervalConfig `json:"intervals"`
	Notify       bool             `json:"notify"`
	DarkTheme    bool             `json:"dark_theme"`
}

// Timers converts the configured interval sequence to timer values,
// preserving order.
func (c *TimerConfig) Timers() []timer.Timer {
	timers := make([]timer.Timer, len(c.Intervals))

	for i, v := range c.Intervals {
		timers[i] = timer.New(v.Name, v.Duration)
	}

	return timers
}

func defaultIntervals() []map[string]any {
	return []map[string]any{
		{
			"name":     workIntervalName,
			"duration": defaultWorkMinutes * secondsInAMinute,
		},
		{
			"name":     restIntervalName,
			"duration": defaultRestMinutes * secondsInAMinute,
		},
	}
}

// ParseIntervals parses a comma-separated list of Name:seconds pairs,
// e.g. "Deep work:2700,Break:600". Zero and negative durations are
// accepted; they expire immediately when reached.
func ParseIntervals(s string) ([]IntervalConfig, error) {
	var intervals []IntervalConfig

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, secs, found := strings.Cut(entry, ":")

		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidInterval, entry)
		}

		duration, err := strconv.Atoi(strings.TrimSpace(secs))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidInterval, entry)
		}

		intervals = append(intervals, IntervalConfig{
			Name:     name,
			Duration: duration,
		})
	}

	if len(intervals) == 0 {
		return nil, errInvalidInterval
	}

	return intervals, nil
}

func validateMinutes(input string) error {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || num <= 0 {
		return errExpectedInteger
	}

	return nil
}

// prompt allows the user to state their preferred values for the most
// important timer settings. It is run only when a configuration file is
// not already present (e.g. on first run).
func prompt() error {
	pterm.Info.Printfln(
		"Your preferences will be saved to: %s",
		timerCfg.PathToConfig,
	)

	workStr := strconv.Itoa(defaultWorkMinutes)
	restStr := strconv.Itoa(defaultRestMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work length in minutes").
				Value(&workStr).
				Validate(validateMinutes),
			huh.NewInput().
				Title("Rest length in minutes").
				Value(&restStr).
				Validate(validateMinutes),
		),
	)

	err := form.Run()
	if err != nil {
		return err
	}

	workMins, _ := strconv.Atoi(strings.TrimSpace(workStr))
	restMins, _ := strconv.Atoi(strings.TrimSpace(restStr))

	viper.Set(configIntervals, []map[string]any{
		{
			"name":     workIntervalName,
			"duration": workMins * secondsInAMinute,
		},
		{
			"name":     restIntervalName,
			"duration": restMins * secondsInAMinute,
		},
	})

	return nil
}

// createTimerConfig prompts the user for preferred values of key
// settings and saves the results to the user's config directory.
func createTimerConfig() error {
	timerDefaults()

	if os.Getenv("POMOQ_ENV") != "testing" {
		err := prompt()
		if err != nil {
			return err
		}
	}

	err := viper.WriteConfigAs(timerCfg.PathToConfig)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Your settings have been saved to %s",
		timerCfg.PathToConfig,
	)

	return nil
}

// timerDefaults sets the program's default configuration values.
func timerDefaults() {
	viper.SetDefault(configIntervals, defaultIntervals())
	viper.SetDefault(configNotify, true)
	viper.SetDefault(configIntervalCmd, "")
	viper.SetDefault(configDarkTheme, true)
}

// initTimerConfig initialises the application configuration. If the
// config file does not exist, it prompts the user and saves the inputted
// preferences and defaults in a config file.
func initTimerConfig() error {
	viper.SetConfigName(strings.TrimSuffix(configFileName, ".yml"))
	viper.SetConfigType("yaml")

	timerCfg.PathToConfig = configFilePath

	viper.AddConfigPath(filepath.Dir(timerCfg.PathToConfig))

	timerDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return createTimerConfig()
		}

		return err
	}

	return nil
}

// setTimerConfig fills the timer configuration from the config file and
// applies command-line overrides on top.
func setTimerConfig(ctx *cli.Context) error {
	timerCfg.Stderr = os.Stderr
	timerCfg.Stdout = os.Stdout
	timerCfg.Stdin = os.Stdin

	// set from config file
	timerCfg.Notify = viper.GetBool(configNotify)
	timerCfg.IntervalCmd = viper.GetString(configIntervalCmd)
	timerCfg.DarkTheme = viper.GetBool(configDarkTheme)

	err := viper.UnmarshalKey(configIntervals, &timerCfg.Intervals)
	if err != nil {
		return err
	}

	// set from command-line arguments
	if ctx.String("timers") != "" {
		intervals, err := ParseIntervals(ctx.String("timers"))
		if err != nil {
			return err
		}

		timerCfg.Intervals = intervals
	}

	if ctx.Uint("work") > 0 {
		setIntervalDuration(
			workIntervalName,
			int(ctx.Uint("work"))*secondsInAMinute,
		)
	}

	if ctx.Uint("rest") > 0 {
		setIntervalDuration(
			restIntervalName,
			int(ctx.Uint("rest"))*secondsInAMinute,
		)
	}

	if ctx.Bool("disable-notification") {
		timerCfg.Notify = false
	}

	if ctx.String("cmd") != "" {
		timerCfg.IntervalCmd = ctx.String("cmd")
	}

	return nil
}

// setIntervalDuration overrides the duration of every configured
// interval with the given name.
func setIntervalDuration(name string, seconds int) {
	for i := range timerCfg.Intervals {
		if timerCfg.Intervals[i].Name == name {
			timerCfg.Intervals[i].Duration = seconds
		}
	}
}

// Timer initializes and returns the timer configuration. The
// initialization is done just once no matter how many times it is
// called.
func Timer(ctx *cli.Context) *TimerConfig {
	once.Do(func() {
		err := initTimerConfig()
		if err == nil {
			err = setTimerConfig(ctx)
		}

		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}
	})

	return timerCfg
}
