// Package config provides configuration loading, merging, and validation
// facilities for the msync daemon and CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Command-line overrides
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
