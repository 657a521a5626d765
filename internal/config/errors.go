package config

import "errors"

var (
	// ErrNoInput is returned when no analysis input files are given.
	ErrNoInput = errors.New("no analysis input files specified")

	// ErrInvalidFormat is returned for an unknown report format.
	ErrInvalidFormat = errors.New("report format must be \"pdf\" or \"markdown\"")

	// ErrInvalidConcurrency is returned for a non-positive concurrency.
	ErrInvalidConcurrency = errors.New("concurrency must be positive")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
