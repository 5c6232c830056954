// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling for the podforge CLI.
//
// It defines error types that carry the failed operation, the resource
// involved, and remediation steps, plus a registry of known failure
// categories with Markdown-formatted guidance rendered in the terminal.
package issue
