// SPDX-License-Identifier: Unlicense OR MIT

package androidenv

import "golang.org/x/sys/unix"

// threadID returns the id of the calling OS thread, for logging.
func threadID() int {
	return unix.Gettid()
}
