// Package file provides file-backed configuration adapters: the TOML
// application config store, the JSON prompt-definition store, and a
// change watcher that triggers prompt reloads.
package file
