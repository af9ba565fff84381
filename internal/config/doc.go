// Package config loads melt.yaml, the preview gallery's configuration.
//
//	server:
//	  addr: ":7070"
//	  pretty: false
//	  dev_mode: true
//	  shutdown_timeout: 5s
//	theme:
//	  name: light        # built-in theme, ignored when file is set
//	  file: brand.toml   # YAML or TOML theme file
//	  watch: true        # reload the theme file when it changes
//	metrics:
//	  namespace: melt
//	tracing:
//	  tracer: melt/gallery
//	log:
//	  level: info
//	  json: false
//
// A missing file is not an error: every key has a default.
package config
