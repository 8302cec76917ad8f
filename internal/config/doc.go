// Package config loads, validates, and normalizes librarian configuration.
//
// Configuration comes from a TOML file, defaulting to
// ~/.config/librarian/config.toml with librarian.toml in the working
// directory as a project-local fallback. Every path field is expanded and
// absolute by the time Load returns, and list-valued settings expose typed
// accessors so callers never parse the comma syntax themselves.
package config
