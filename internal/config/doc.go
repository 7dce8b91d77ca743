// Package config provides configuration structures and utilities for
// r3c0nkthx. It defines the run options built from CLI flags, validation,
// and the optional YAML configuration file.
package config
