// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting: actionable errors
// carrying operation context and fix suggestions, plus a catalog of known
// issues rendered as styled markdown for the terminal.
package issue
