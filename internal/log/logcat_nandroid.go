// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package log

import (
	"io"
	"os"
)

// Output returns os.Stderr.
func Output() io.Writer {
	return os.Stderr
}
