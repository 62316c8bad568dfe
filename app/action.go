package app

import (
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pomoq/pomoq/config"
	"github.com/pomoq/pomoq/internal/ui"
	"github.com/pomoq/pomoq/tasks"
	"github.com/pomoq/pomoq/timer"
	"github.com/pomoq/pomoq/tui"
)

const (
	envNoColor      = "NO_COLOR"
	envPomoqNoColor = "POMOQ_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// initLogging routes slog output to a rotating file in the XDG state
// directory so that diagnostics never corrupt the countdown display.
func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	config.InitializePaths()

	initLogging(ctx.Bool("verbose"))

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMOQ_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoqNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomoq")

	return nil
}

// editConfigAction handles the edit-config command which opens the pomoq
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Timer(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction starts the countdown in either the full-screen interface
// or the single-line simple mode.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Timer(ctx)

	slog.Debug(spew.Sdump(cfg))

	ui.DarkTheme = cfg.DarkTheme

	if ctx.Bool("simple") {
		return runSimple(cfg)
	}

	return runTUI(cfg)
}

// runSimple drives the countdown on a single rewritten terminal line
// until the queue is exhausted or the user interrupts it.
func runSimple(cfg *config.TimerConfig) error {
	var once sync.Once

	done := make(chan struct{})

	ctrl := timer.NewController(
		cfg.Timers(),
		ui.NewConsole(cfg.Stdout),
		timer.WithNotify(timer.DesktopNotifier(cfg.Notify, cfg.IntervalCmd)),
		timer.WithOnStop(func() {
			once.Do(func() { close(done) })
		}),
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	defer signal.Stop(c)

	go func() {
		<-c
		ctrl.Stop()
	}()

	ctrl.Start()

	// an empty or instantly-expiring queue finishes inside Start
	if ctrl.State() == timer.Running {
		<-done
	}

	return nil
}

// runTUI hands the countdown to the full-screen interface.
func runTUI(cfg *config.TimerConfig) error {
	renderer := tui.NewRenderer()

	ctrl := timer.NewController(
		cfg.Timers(),
		renderer,
		timer.WithNotify(timer.DesktopNotifier(cfg.Notify, cfg.IntervalCmd)),
	)

	m := tui.NewModel(ctrl, tasks.NewList())

	p := tea.NewProgram(m)

	renderer.Attach(p)

	_, err := p.Run()

	// no tick may survive the interface
	ctrl.Stop()

	return err
}
