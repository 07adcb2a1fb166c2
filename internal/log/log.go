// SPDX-License-Identifier: Unlicense OR MIT

// Package log builds the loggers used by androidenv. On Android their
// output goes to logcat.
package log

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Tag is the logcat tag and the default logger prefix.
const Tag = "androidenv"

// LevelEnv names the environment variable that overrides the log level.
const LevelEnv = "ANDROIDENV_LOG_LEVEL"

// New returns a logger writing to Output. The level is warn unless
// overridden through LevelEnv.
func New(prefix string) *charmlog.Logger {
	return NewWithWriter(Output(), prefix)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, prefix string) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: prefix,
		Level:  level(os.Getenv(LevelEnv)),
	})
}

func level(s string) charmlog.Level {
	if s == "" {
		return charmlog.WarnLevel
	}
	lvl, err := charmlog.ParseLevel(s)
	if err != nil {
		return charmlog.WarnLevel
	}
	return lvl
}
