// Package config holds the planner's run configuration.
//
// A Config is resolved once before planning begins, from defaults, an
// optional TOML file, and command-line overrides, then validated and
// treated as read-only for the rest of the run.
package config
