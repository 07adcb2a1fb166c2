// SPDX-License-Identifier: Unlicense OR MIT

//go:build androidenv_ndkcontext

package androidenv

import "github.com/project-robius/robius-android-env/androidctx"

// defaultBackend reads the context published by the toolkit through
// package androidctx. The Registry is not consulted.
func defaultBackend(*Registry) Backend {
	return ContextBackend{Store: androidctx.Default()}
}
