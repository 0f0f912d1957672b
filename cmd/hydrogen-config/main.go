// Command hydrogen-config loads a Hydrogen server configuration the way the
// server does and reports on it.
//
// # Quick Start
//
//	# Load and log every resolved value
//	hydrogen-config load -c /etc/hydrogen/hydrogen.json
//
//	# Show one section with defaults marked
//	hydrogen-config dump WebServer
//
//	# Write the compiled-in defaults
//	hydrogen-config defaults hydrogen.json
//
// # Environment Variables
//
//   - HYDROGEN_CONFIG: configuration file to load
//   - HYDROGEN_CONFIG_LOG_LEVEL: log level (debug, info, warn, error)
//   - HYDROGEN_CONFIG_LOG_FORMAT: console or json
package main

func main() {
	Execute()
}
