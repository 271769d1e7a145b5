// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Sources are merged in the
// order listed below and the first non-zero value for a field wins:
//  1. Command-line flags
//  2. Environment variables (a local .env file is loaded into the
//     environment first, without overriding variables already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
