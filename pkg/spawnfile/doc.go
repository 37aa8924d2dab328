// SPDX-License-Identifier: MPL-2.0

// Package spawnfile loads spawn documents: small files describing one
// process invocation (program, argument list, and spawn options).
//
// Documents are written in CUE (validated against the embedded #Spawnfile
// schema) or TOML. In both forms the options block stays a dynamic mapping:
// the schema only pins the outer shape, and the spawn package's option
// parser is the strict validation boundary for the options themselves.
package spawnfile
