// Package config loads colorpick's configuration.
//
// Configuration is layered. Built-in defaults are overlaid by the user file
// (~/.config/colorpick/config.yaml) when it exists, then by an explicit file
// passed with --config, then by environment variables. A YAML layer only
// overrides the keys it sets.
//
// Example configuration:
//
//	storage:
//	  path: ~/.config/colorpick/colorpick.db
//	capture:
//	  source: file
//	  file: /tmp/screen.png
//	magnifier:
//	  size: 160
//	  zoom: 4
//	naming:
//	  language: en
//	logging:
//	  level: debug
package config
