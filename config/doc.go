// Package config loads search defaults from a TOML file using
// github.com/pelletier/go-toml/v2, unmarshaling straight into a typed
// Config rather than an open-ended map, since the option set here is
// small and fixed.
package config
