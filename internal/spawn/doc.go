// SPDX-License-Identifier: MPL-2.0

// Package spawn converts loosely-typed spawn configurations into validated,
// platform-correct command descriptors.
//
// The package has two halves, consumed in sequence. The option parser
// (Parser, ParseOptions) takes a dynamic configuration value — typically the
// result of decoding CUE, TOML, or JSON into map[string]any — and produces a
// validated Options record, failing with a field-qualified OptionError on the
// first invalid field. The command synthesizer (Options.Descriptor) combines
// an Options record with a program and argument list into a finalized
// Descriptor ready to hand to a launcher.
//
// Neither half executes anything. Execution belongs to the launcher package,
// which consumes Descriptor values.
package spawn
