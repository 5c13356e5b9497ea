// Package config loads the bases configuration.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, either the --config path or $XDG_CONFIG_HOME/bases/config.toml
//  3. BASES_ environment variables, where a double underscore separates sections
//     (BASES_RELATIONAL__HOST sets relational.host)
//  4. explicit overrides, usually coming from command-line flags
package config
