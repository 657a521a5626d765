// Package config holds policyscan's configuration: defaults, CLI-populated
// settings, the optional .policyscan YAML file, and XDG directory helpers.
//
// Configuration flows one way: defaults, then the config file, then CLI
// flags, each layer overriding the previous. The resulting Config value is
// passed through the application via dependency injection rather than global
// state.
package config
