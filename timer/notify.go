package timer

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

// NotifyFunc is invoked after an interval completes. next is nil when the
// run has finished.
type NotifyFunc func(completed Timer, next *Timer)

// DesktopNotifier returns a NotifyFunc that raises a desktop notification
// when an interval completes and optionally runs a user-supplied command
// afterwards. Failures are logged, never surfaced to the countdown.
func DesktopNotifier(notify bool, intervalCmd string) NotifyFunc {
	return func(completed Timer, next *Timer) {
		if notify {
			title := completed.Name() + " is finished"

			msg := "All intervals completed"
			if next != nil {
				msg = "Up next: " + next.Name()
			}

			err := beeep.Notify(title, msg, "")
			if err != nil {
				slog.Error(
					"unable to display notification",
					slog.Any("error", err),
				)
			}
		}

		if intervalCmd == "" {
			return
		}

		err := runIntervalCmd(intervalCmd)
		if err != nil {
			slog.Error("interval command failed", slog.Any("error", err))
		}
	}
}

// runIntervalCmd executes the configured post-interval command.
func runIntervalCmd(intervalCmd string) error {
	cmdSlice, err := shellquote.Split(intervalCmd)
	if err != nil {
		return fmt.Errorf("unable to parse interval_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
