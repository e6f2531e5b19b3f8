// Package logging configures the shared logrus logger. The TUI owns the
// terminal, so all output goes to a rotated file under the XDG state dir.
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *logrus.Logger
)

func stateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "launchpad")
}

func logger() *logrus.Logger {
	once.Do(func() {
		base = logrus.New()
		base.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(stateDir(), "launchpad.log"),
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if lvl, err := logrus.ParseLevel(os.Getenv("LAUNCHPAD_LOG_LEVEL")); err == nil {
			base.SetLevel(lvl)
		} else {
			base.SetLevel(logrus.InfoLevel)
		}
	})
	return base
}

// NewLogger returns an entry tagged with the component name.
func NewLogger(component string) *logrus.Entry {
	return logger().WithField("component", component)
}
