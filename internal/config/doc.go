// Package config provides configuration loading, merging, and validation
// facilities for the galaxy-admin commands.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every non-zero field):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [Load]. Each command then asks for the view it
// needs ([StructuredConfig.GalaxyView], [StructuredConfig.LDAPView], ...),
// which validates only the settings that command depends on.
package config
