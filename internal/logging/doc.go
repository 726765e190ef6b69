// Package logging configures the zap logger shared by the arbor CLI and
// query server. It provides validated configuration (level, format, constant
// fields), JSON or console encoding to stdout, and an observer-backed test
// helper.
package logging
