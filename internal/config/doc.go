// Package config provides configuration loading, merging, and validation
// facilities for the vault client and the remote vault service.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for the CLI and [GetServerConfig]
// for the HTTP service. Both return a narrowed, validated view of
// [StructuredConfig].
package config
