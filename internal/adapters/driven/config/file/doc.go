// Package file stores Jotter's configuration as TOML on the local
// filesystem, by default in ~/.jotter/config.toml.
package file
