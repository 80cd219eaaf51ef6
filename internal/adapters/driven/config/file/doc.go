// Package file provides the TOML-backed configuration store.
//
// Settings live in config.toml inside the zalgo config directory
// (~/.zalgo unless overridden). Keys are exposed flattened with dots and
// written back as nested TOML tables.
package file
