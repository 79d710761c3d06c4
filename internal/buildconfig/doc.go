// Package buildconfig provides the configuration consumed by the email
// template build engine: source and output paths, expression delimiters,
// and the data exposed to templates (albums, tags and the current year).
// The year is kept as a function so it reflects the clock at the moment the
// engine reads it, not the moment the configuration was built.
package buildconfig
