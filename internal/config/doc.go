// Package config provides configuration loading, merging, validation and
// persistence facilities for restcli.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables (RESTCLI_* prefix)
//  2. TOML config file
//  3. Built-in defaults
//
// The main entry points are [Load] for the merged runtime configuration,
// [FromFile] and [FromEnv] for single-source loads, and [New] for explicit
// construction. All constructors validate field domains immediately; a
// Config that exists is a Config whose timeout and log level are legal.
package config
