package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. While a full-screen front end owns the
// terminal, toFile sends the output to ~/.arcade/arcade.log instead of
// stderr. The returned function closes the log file.
func newLogger(prefix string, toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		f, err := openLogFile()
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
