// File: hydrogen-config/doc.go

// Package config loads the configuration of a Hydrogen server.
//
// A single document (JSON, or TOML/YAML) is parsed once and walked by sixteen
// section loaders, A. Server through P. Notify, in a fixed order. Each section
// resets itself to compiled-in defaults, shapes its variable-length parts
// from the document, resolves a declarative field table and validates the
// result. The first failing section aborts the load.
//
// Values may name an environment variable as "${env.NAME}". Each field is
// resolved by this priority (highest first):
//  1. A reference held by the default, when the variable is set
//  2. A reference in the document, when the variable is set
//  3. A literal of the right type in the document
//  4. The compiled-in default
//
// Every resolution is logged with zerolog as one line, such as
//
//	――― Port: 5000 *
//
// where the trailing marker means the default was kept. Secrets are masked.
// The same field tables drive Dump, and the Report attached to the
// AppConfig records where each value came from.
//
// Quick Start:
//
//	cfg, err := config.NewBuilder().
//	    WithFile("/etc/hydrogen/hydrogen.json").
//	    WithLogger(log).
//	    WithOverride("WebServer.Port", "8080").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.WebServer.Port)
//
// Discovery order: $HYDROGEN_CONFIG, the explicit path, then hydrogen.json,
// /etc/hydrogen/hydrogen.json and /usr/local/etc/hydrogen/hydrogen.json.
//
// Thread Safety:
// A load runs on one goroutine and the returned AppConfig is never modified
// afterwards. Builder.Watch hands each reload to its callback as a new AppConfig.
package config
