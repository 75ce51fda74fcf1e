// restcli is a generic REST API client for the command line.
//
// It authenticates with a bearer token and issues CRUD-style requests
// against arbitrary resource paths of a configured API.
//
// Usage:
//
//	# Save credentials to the default config location
//	restcli configure -e https://api.example.com -t TOKEN
//
//	# Show the effective configuration
//	restcli status
//
//	# Fetch a resource
//	restcli fetch -r users/1
//
//	# Create a resource
//	restcli create -r users -d '{"name":"John"}'
//
//	# Update, delete, probe
//	restcli update -r users/1 -d '{"name":"Jane"}'
//	restcli delete -r users/1 --force
//	restcli health
//
// Configuration is read from RESTCLI_* environment variables and an optional
// TOML file (--config or $RESTCLI_CONFIG); command-line flags override both.
package main

func main() {
	Execute()
}
