// SPDX-License-Identifier: Unlicense OR MIT

//go:build android && androidenv_gio && !androidenv_ndkcontext

package androidenv

import "gioui.org/app"

// defaultBackend reads the JavaVM and the application context maintained
// by Gio. Both are 0 until the Gio activity has started.
func defaultBackend(*Registry) Backend {
	return AccessorBackend{
		JavaVM:   app.JavaVM,
		Activity: app.AppContext,
	}
}
