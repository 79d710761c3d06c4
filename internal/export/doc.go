// Package export renders the build configuration in a format the external
// build engine can load (JSON or YAML) and writes it to a stream or file.
package export
