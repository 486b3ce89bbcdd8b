// Package config provides configuration structures and utilities for coprimepi.
// It defines the run parameters of an estimation, their defaults, validation
// rules, and the optional YAML configuration file that supplies defaults.
package config
