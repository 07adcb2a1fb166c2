// SPDX-License-Identifier: Unlicense OR MIT

//go:build !androidenv_ndkcontext && !(android && androidenv_gio)

package androidenv

// defaultBackend reads the state registered with SetActivityGetter and
// SetVM.
func defaultBackend(r *Registry) Backend {
	return RegistryBackend{Registry: r}
}
