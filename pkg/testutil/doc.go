// Package testutil provides helpers shared by the bases test suites.
//
// Key components:
//   - Isolate: points the XDG directories at a temporary tree and turns
//     colors off, so tests never read or write the user's configuration
//     or logs
//   - CreateFile and FileExists: small filesystem helpers for config tests
//
// Usage guidelines:
//   - Call Isolate first in any test that loads configuration or runs a
//     command
//   - All test data should be defined inline, not in external files
package testutil
