/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
switchkit uses it to read binding options (focus class, role prefix, strict
identifier handling) from YAML or JSON without verbose type assertions.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "focus_class": "focus-ring",
	    "strict_identifiers": true,
	})

	class := cfg.String("focus_class", "focus")       // "focus-ring"
	strict := cfg.Bool("strict_identifiers", false)   // true
	missing := cfg.String("role_prefix", "switch")    // "switch"

All accessors return the default value if the key is missing or the value
cannot be converted to the requested type.

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("switchkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	opts := switchkit.FromConfig(cfg)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
