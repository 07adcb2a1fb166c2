// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux

package androidenv

func threadID() int {
	return -1
}
