// Package config is responsible for setting the program config from
// the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

// Version is set at build time through ldflags.
var Version = "dev"

var (
	configDir      = "pomoq"
	configFileName = "config.yml"
	logFileName    = "pomoq.log"
	configFilePath string
	logFilePath    string
)

// Dir returns the name of the program's configuration directory.
func Dir() string {
	return configDir
}

// FilePath returns the path to the configuration file.
func FilePath() string {
	return configFilePath
}

// LogFilePath returns the path to the rotating log file.
func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the configuration and log file paths through
// the XDG base directories. A POMOQ_ENV value suffixes the file names so
// that tests and development runs never touch the real configuration.
func InitializePaths() {
	pomoqEnv := strings.TrimSpace(os.Getenv("POMOQ_ENV"))
	if pomoqEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pomoqEnv)
		logFileName = fmt.Sprintf("pomoq_%s.log", pomoqEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath, err = xdg.StateFile(filepath.Join(configDir, logFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
