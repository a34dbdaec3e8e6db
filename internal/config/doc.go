// Package config loads, normalizes, and validates legenda's TOML
// configuration. Defaults cover a local standalone server; the HOST and PORT
// environment variables override the bind address so the same binary runs
// behind a hosting platform.
package config
