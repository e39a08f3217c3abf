package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var discardLogger = log.New(io.Discard)

// screenshotDir is where Ctrl+S writes plain-text frames.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".arcade", "screenshots"), nil
}

// writeScreenshot saves the glyphs of buf, without color, as
// <dir>/<gameID>_<timestamp>.txt and returns the path.
func writeScreenshot(dir, gameID string, buf *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(buf.String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// screenshot paints the current frame and writes it out. The game keeps
// running whatever happens.
func (m *Model) screenshot() {
	core.Paint(m.buf, m.game)
	dir, err := screenshotDir()
	if err == nil {
		var path string
		if path, err = writeScreenshot(dir, m.game.ID(), m.buf, time.Now()); err == nil {
			m.logger().Info("screenshot saved", "path", path)
			return
		}
	}
	m.logger().Warn("could not save screenshot", "error", err)
}
