// Package file provides a TOML file-based ConfigStore adapter. The
// configuration lives at ~/.folio/config.toml and holds the backend
// connection settings and search defaults.
package file
