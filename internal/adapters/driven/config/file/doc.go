// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: read-only TOML configuration
package file
