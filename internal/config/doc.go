// Package config provides configuration loading, merging, and validation
// facilities for the sync server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source are filled with defaults before
// validation. The entry point is [GetStructuredConfig].
package config
