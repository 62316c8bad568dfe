// Package app defines the pomoq command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pomoq/pomoq/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomoq app instance.
func Get() *cli.App {
	pomoqApp := &cli.App{
		Name: "pomoq",
		Usage: `
		Pomoq is a Pomodoro-style interval timer for the command line. It
		works through an ordered queue of named countdown intervals, one
		second at a time, until the queue is exhausted.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			restFlag,
			timersFlag,
			disableNotificationFlag,
			intervalCmdFlag,
			simpleFlag,
			noColorFlag,
			verboseFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pomoqApp
}
