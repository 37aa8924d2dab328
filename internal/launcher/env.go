// SPDX-License-Identifier: MPL-2.0

package launcher

import "sort"

// EnvToSlice converts an environment map to "KEY=VALUE" form, sorted for
// deterministic ordering.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// OverlayEnv appends overlay entries to a host environment slice. Appending
// is sufficient for additive overlay semantics: the last occurrence of a key
// wins in every process-launch API the launchers use.
func OverlayEnv(environ []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return environ
	}
	result := make([]string, 0, len(environ)+len(overlay))
	result = append(result, environ...)
	return append(result, EnvToSlice(overlay)...)
}
