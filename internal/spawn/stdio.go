// SPDX-License-Identifier: MPL-2.0

package spawn

type (
	// StdioConfig is the capability carried for stdio handling. The core
	// neither validates nor interprets stdio contents; it only threads the
	// capability through to the descriptor, where the launcher interprets it.
	StdioConfig interface {
		// ApplyTo attaches the stdio configuration to a descriptor.
		ApplyTo(d *Descriptor)
	}

	// StdioParser decodes the raw "stdio" field of a configuration object.
	// The launcher package supplies the real decoder; the default keeps the
	// value opaque.
	StdioParser func(v any) (StdioConfig, error)

	// rawStdio carries an unexamined stdio value through to the descriptor.
	rawStdio struct {
		value any
	}
)

// passthroughStdio is the default StdioParser: it wraps the raw value without
// looking at it.
func passthroughStdio(v any) (StdioConfig, error) {
	return rawStdio{value: v}, nil
}

// ApplyTo attaches the raw value to the descriptor verbatim.
func (r rawStdio) ApplyTo(d *Descriptor) {
	d.Stdio = r.value
}
