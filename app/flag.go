package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work interval duration in minutes (default: 25)",
	}

	restFlag = &cli.UintFlag{
		Name:    "rest",
		Aliases: []string{"r"},
		Usage:   "Rest interval duration in minutes (default: 5)",
	}

	timersFlag = &cli.StringFlag{
		Name:    "timers",
		Aliases: []string{"t"},
		Usage:   "Replace the interval queue with an ordered comma-delimited list of Name:seconds pairs (e.g. 'Deep work:2700,Break:600')",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after an interval is completed",
	}

	intervalCmdFlag = &cli.StringFlag{
		Name:    "cmd",
		Aliases: []string{"c"},
		Usage:   "Execute an arbitrary command after each interval",
	}

	simpleFlag = &cli.BoolFlag{
		Name:  "simple",
		Usage: "Print the countdown on a single line instead of starting the full-screen interface",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug-level diagnostics",
	}
)
